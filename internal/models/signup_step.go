package models

// SignupStep is the stage a user has reached in the onboarding flow.
type SignupStep string

const (
	StepBasicInfo     SignupStep = "basic_info"
	StepPlanSelection SignupStep = "plan_selection"
	StepProjectSetup  SignupStep = "project_setup"
	StepCompleted     SignupStep = "completed"
)

// signupTransitions is the full set of legal step moves. Completion is terminal
// and reachable from every state: uploading a project synopsis (or the explicit
// complete-onboarding call) finishes the flow no matter where the user currently is.
var signupTransitions = map[SignupStep][]SignupStep{
	StepBasicInfo:     {StepPlanSelection, StepCompleted},
	StepPlanSelection: {StepProjectSetup, StepCompleted},
	StepProjectSetup:  {StepCompleted},
	StepCompleted:     {},
}

func (s SignupStep) Valid() bool {
	_, ok := signupTransitions[s]
	return ok
}

// CanAdvance reports whether moving from s to next is in the transition table.
func (s SignupStep) CanAdvance(next SignupStep) bool {
	for _, t := range signupTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
