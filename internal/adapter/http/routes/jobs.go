package routes

import "github.com/gin-gonic/gin"

const (
	PathJobs         = "/jobs"
	PathEstimates    = "/estimates"
	PathChangeOrders = "/change-orders"
)

func addJobRoutes(rg *gin.RouterGroup, h Handlers) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", h.Job.CreateJob)
		jobs.GET("", h.Job.ListJobs)
		jobs.GET("/:id", h.Job.GetJob)
		jobs.PATCH("/:id/schedule", h.Job.ScheduleJob)
		jobs.POST("/:id/start", h.Job.StartJob)
		jobs.POST("/:id/complete", h.Job.CompleteJob)
		jobs.GET("/:id/change-orders", h.Job.ListChangeOrders)

		jobs.POST("/:id/ai/suggest-price", h.AI.SuggestPriceForJob)
		jobs.POST("/:id/ai/tiered-estimate", h.AI.TieredEstimateForJob)
		jobs.POST("/:id/ai/suggest-parts", h.AI.SuggestPartsForJob)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", h.Estimate.CreateEstimate)
		estimates.GET("", h.Estimate.ListEstimates)
		estimates.GET("/:id", h.Estimate.GetEstimate)
		estimates.POST("/:id/send", h.Estimate.SendEstimate)
		estimates.PATCH("/:id/approve", h.Estimate.ApproveEstimate)
		estimates.PATCH("/:id/reject", h.Estimate.RejectEstimate)
	}

	changeOrders := rg.Group(PathChangeOrders)
	{
		changeOrders.POST("", h.ChangeOrder.CreateChangeOrder)
		changeOrders.PATCH("/:id/approve", h.ChangeOrder.ApproveChangeOrder)
		changeOrders.PATCH("/:id/reject", h.ChangeOrder.RejectChangeOrder)
	}
}
