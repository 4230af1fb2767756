package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/flows"
	"fieldservice/internal/usecase/interfaces"
)

// IAIUseCase runs the prompt flows, either with caller supplied input or
// with input assembled from stored records.
type IAIUseCase interface {
	Flows() []string
	Run(ctx context.Context, flow string, input json.RawMessage) (any, error)
	Stream(ctx context.Context, flow string, input json.RawMessage, onChunk func(chunk string) error) (any, error)

	SuggestPriceForJob(ctx context.Context, jobID, region string) (flows.SuggestPriceOutput, error)
	TieredEstimateForJob(ctx context.Context, jobID string) (flows.TieredEstimateOutput, error)
	SuggestPartsForJob(ctx context.Context, jobID string) (flows.SuggestPartsOutput, error)
	AnalyzeInvoice(ctx context.Context, invoiceID string) (flows.InvoiceAnomaliesOutput, error)
}

type AIUseCase struct {
	catalog   *flows.Catalog
	customers interfaces.ICustomerRepository
	jobs      interfaces.IJobRepository
	invoices  interfaces.IInvoiceRepository
	inventory interfaces.IInventoryRepository
}

var _ IAIUseCase = (*AIUseCase)(nil)

func NewAIUseCase(catalog *flows.Catalog, customers interfaces.ICustomerRepository, jobs interfaces.IJobRepository, invoices interfaces.IInvoiceRepository, inventory interfaces.IInventoryRepository) *AIUseCase {
	return &AIUseCase{catalog: catalog, customers: customers, jobs: jobs, invoices: invoices, inventory: inventory}
}

func (u *AIUseCase) Flows() []string {
	return u.catalog.Names()
}

func (u *AIUseCase) Run(ctx context.Context, flow string, input json.RawMessage) (any, error) {
	return u.catalog.Run(ctx, strings.TrimSpace(flow), input)
}

func (u *AIUseCase) Stream(ctx context.Context, flow string, input json.RawMessage, onChunk func(chunk string) error) (any, error) {
	return u.catalog.Stream(ctx, strings.TrimSpace(flow), input, onChunk)
}

func (u *AIUseCase) SuggestPriceForJob(ctx context.Context, jobID, region string) (flows.SuggestPriceOutput, error) {
	j, history, err := u.jobWithHistory(ctx, jobID)
	if err != nil {
		return flows.SuggestPriceOutput{}, err
	}
	return u.catalog.SuggestPrice.Run(ctx, flows.SuggestPriceInput{
		JobDescription:  describeJob(j),
		CustomerHistory: history,
		Region:          strings.TrimSpace(region),
	})
}

func (u *AIUseCase) TieredEstimateForJob(ctx context.Context, jobID string) (flows.TieredEstimateOutput, error) {
	j, history, err := u.jobWithHistory(ctx, jobID)
	if err != nil {
		return flows.TieredEstimateOutput{}, err
	}
	return u.catalog.TieredEstimate.Run(ctx, flows.TieredEstimateInput{
		JobDetails:      describeJob(j),
		CustomerHistory: history,
	})
}

func (u *AIUseCase) SuggestPartsForJob(ctx context.Context, jobID string) (flows.SuggestPartsOutput, error) {
	j, err := findByID(ctx, u.jobs, jobID, jobIDOf, ErrJobNotFound)
	if err != nil {
		return flows.SuggestPartsOutput{}, err
	}
	items, err := u.inventory.List(ctx)
	if err != nil {
		return flows.SuggestPartsOutput{}, err
	}

	var sb strings.Builder
	for _, it := range items {
		fmt.Fprintf(&sb, "- %s %s (warehouse %d, price %.2f)\n", it.SKU, it.Name, it.QuantityOnHand, it.Price)
	}
	return u.catalog.SuggestParts.Run(ctx, flows.SuggestPartsInput{
		JobDescription:     describeJob(j),
		AvailableInventory: sb.String(),
	})
}

func (u *AIUseCase) AnalyzeInvoice(ctx context.Context, invoiceID string) (flows.InvoiceAnomaliesOutput, error) {
	inv, err := findByID(ctx, u.invoices, invoiceID, invoiceIDOf, ErrInvoiceNotFound)
	if err != nil {
		return flows.InvoiceAnomaliesOutput{}, err
	}
	history, err := u.customerHistory(ctx, inv.CustomerID, "", inv.ID)
	if err != nil {
		return flows.InvoiceAnomaliesOutput{}, err
	}
	return u.catalog.InvoiceAnomalies.Run(ctx, flows.InvoiceAnomaliesInput{
		InvoiceSummary:  summarizeInvoice(inv),
		CustomerHistory: history,
	})
}

func (u *AIUseCase) jobWithHistory(ctx context.Context, jobID string) (entities.Job, string, error) {
	j, err := findByID(ctx, u.jobs, jobID, jobIDOf, ErrJobNotFound)
	if err != nil {
		return entities.Job{}, "", err
	}
	history, err := u.customerHistory(ctx, j.CustomerID, j.ID, "")
	if err != nil {
		return entities.Job{}, "", err
	}
	return j, history, nil
}

// customerHistory lists the customer's other jobs and invoices, one per line.
func (u *AIUseCase) customerHistory(ctx context.Context, customerID, skipJobID, skipInvoiceID string) (string, error) {
	c, err := findByID(ctx, u.customers, customerID, customerIDOf, ErrCustomerNotFound)
	if err != nil {
		return "", err
	}
	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return "", err
	}
	invoices, err := u.invoices.List(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Customer: %s", c.FullName())
	if c.CompanyName != "" {
		fmt.Fprintf(&sb, " (%s)", c.CompanyName)
	}
	sb.WriteString("\n")
	for _, j := range jobs {
		if j.CustomerID == c.ID && j.ID != skipJobID {
			fmt.Fprintf(&sb, "- job %q: %s\n", j.Title, j.Status)
		}
	}
	for _, inv := range invoices {
		if inv.CustomerID == c.ID && inv.ID != skipInvoiceID {
			fmt.Fprintf(&sb, "- invoice %s: total %.2f, paid %.2f, %s\n", inv.Number, inv.Total, inv.AmountPaid, inv.Status)
		}
	}
	return sb.String(), nil
}

func describeJob(j entities.Job) string {
	if j.Description == "" {
		return j.Title
	}
	return j.Title + "\n" + j.Description
}

func summarizeInvoice(inv entities.Invoice) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Invoice %s (%s)\n", inv.Number, inv.Status)
	for _, l := range inv.LineItems {
		fmt.Fprintf(&sb, "- %s: %g x %.2f = %.2f\n", l.Description, l.Quantity, l.UnitPrice, l.Total)
	}
	fmt.Fprintf(&sb, "Subtotal %.2f, tax rate %g%%, tax %.2f, total %.2f\n", inv.Subtotal, inv.TaxRate, inv.Tax, inv.Total)
	fmt.Fprintf(&sb, "Paid %.2f, refunded %.2f\n", inv.AmountPaid, inv.AmountRefunded)
	return sb.String()
}
