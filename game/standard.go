package game

// NewBaseRules returns the rules of the base game: five roles, three copies each.
func NewBaseRules() *RuleSet {
	return &RuleSet{
		Roles: []RoleRule{
			{Role: Duke, Actions: []ActionKind{Tax}, Blocks: []ActionKind{ForeignAid}},
			{Role: Assassin, Actions: []ActionKind{Assassinate}},
			{Role: Captain, Actions: []ActionKind{Steal}, Blocks: []ActionKind{Steal}},
			{Role: Ambassador, Actions: []ActionKind{Exchange}, Blocks: []ActionKind{Steal}},
			{Role: Contessa, Blocks: []ActionKind{Assassinate}},
		},
		Actions: []ActionRule{
			{Kind: Income, Effect: Effect{Gain: 1}},
			{Kind: ForeignAid, BlockableBy: []Role{Duke}, BlockChallengeable: true, Effect: Effect{Gain: 2}},
			{Kind: Coup, Cost: 7, RequiresTarget: true, Effect: Effect{Kill: true}},
			{Kind: Tax, Challengeable: true, Effect: Effect{Gain: 3}},
			{
				Kind:               Assassinate,
				Cost:               3,
				RequiresTarget:     true,
				Challengeable:      true,
				BlockableBy:        []Role{Contessa},
				BlockChallengeable: true,
				Effect:             Effect{Kill: true},
			},
			{
				Kind:               Steal,
				RequiresTarget:     true,
				Challengeable:      true,
				BlockableBy:        []Role{Captain, Ambassador},
				BlockChallengeable: true,
				Effect:             Effect{Steal: 2},
			},
			{Kind: Exchange, Challengeable: true, Effect: Effect{Draw: 2}},
		},
		DeckCopiesPerRole:   3,
		StartingCoins:       2,
		HandSize:            2,
		MinPlayers:          2,
		MaxPlayers:          6,
		ForcedCoupThreshold: 10,
		ForcedCoupCost:      7,
		Refund:              RefundNever,
		Replacement:         ReplaceBeforeLoss,
	}
}
