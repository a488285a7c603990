package game

// Role is a court character. A RuleSet decides which roles exist and what they do.
type Role string

const (
	Duke       Role = "Duke"
	Assassin   Role = "Assassin"
	Captain    Role = "Captain"
	Ambassador Role = "Ambassador"
	Contessa   Role = "Contessa"
)

// Influence is one card in a player's hand. Revealed cards stay in the hand face up
// and no longer count as influence.
type Influence struct {
	Role     Role
	Revealed bool
}
