package inference

// DemoResult is the body every demo endpoint answers with.
type DemoResult struct {
	Model        string      `json:"model"`
	Status       string      `json:"status"`
	Note         string      `json:"note,omitempty"`
	SampleOutput interface{} `json:"sample_output"`
}

type ComplianceResult struct {
	Model  string      `json:"model"`
	Status string      `json:"status"`
	Report interface{} `json:"sample_output"`
}

// InputError is returned with status 200 when the expected field is empty.
type InputError struct {
	Error string `json:"error"`
}
