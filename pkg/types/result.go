package types

// StepStatus is the outcome of one ensure step
type StepStatus string

const (
	StepSkipped StepStatus = "skipped"
	StepApplied StepStatus = "applied"
)

// Strategy names how a descriptor file was mutated
type Strategy string

const (
	StrategyAppend  Strategy = "append"
	StrategyReplace Strategy = "replace"
)

// Reasons reported for skipped steps
const (
	ReasonDeclared = "declared in the module model"
	ReasonPresent  = "already present in the descriptor"
)

// StepResult records what an ensure step did
type StepResult struct {
	Step     string     `json:"step"`
	Status   StepStatus `json:"status"`
	Strategy Strategy   `json:"strategy,omitempty"`
	File     string     `json:"file,omitempty"`
	Copied   string     `json:"copied,omitempty"`
	// Reason explains a skipped step
	Reason string `json:"reason,omitempty"`
}

// InjectResult is returned by a full injection run
type InjectResult struct {
	Module string       `json:"module"`
	Steps  []StepResult `json:"steps"`
}

// Changed reports whether any step mutated a file
func (r *InjectResult) Changed() bool {
	for _, s := range r.Steps {
		if s.Status == StepApplied {
			return true
		}
	}
	return false
}
