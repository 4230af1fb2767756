package response

type FlowsResponse struct {
	Flows []string `json:"flows"`
}

// FlowResultResponse wraps a flow output with the flow that produced it.
type FlowResultResponse struct {
	Flow   string `json:"flow"`
	Result any    `json:"result"`
}
