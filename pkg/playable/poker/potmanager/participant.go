package potmanager

// Participant provides the betting details the pots are built from
type Participant interface {
	ID() string
	// Contribution is everything the participant has put in the pots this hand
	Contribution() int
	IsAllIn() bool
	// IsActive is false once the participant folds
	IsActive() bool
}
