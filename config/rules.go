package config

import (
	"fmt"
	"io"
	"os"

	"coup/game"

	"gopkg.in/yaml.v3"
)

type roleFile struct {
	Name    string   `yaml:"name"`
	Actions []string `yaml:"actions"`
	Blocks  []string `yaml:"blocks"`
}

type effectFile struct {
	Gain  int  `yaml:"gain"`
	Steal int  `yaml:"steal"`
	Kill  bool `yaml:"kill"`
	Draw  int  `yaml:"draw"`
}

type actionFile struct {
	Kind               string     `yaml:"kind"`
	Cost               int        `yaml:"cost"`
	Target             bool       `yaml:"target"`
	SelfTarget         bool       `yaml:"self_target"`
	Challengeable      bool       `yaml:"challengeable"`
	BlockableBy        []string   `yaml:"blockable_by"`
	BlockChallengeable bool       `yaml:"block_challengeable"`
	Effect             effectFile `yaml:"effect"`
}

type rangeFile struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type forcedCoupFile struct {
	Threshold int `yaml:"threshold"`
	Cost      int `yaml:"cost"`
}

// ruleSetFile is the YAML layout of a rule variant.
type ruleSetFile struct {
	Roles             []roleFile     `yaml:"roles"`
	Actions           []actionFile   `yaml:"actions"`
	DeckCopiesPerRole int            `yaml:"deck_copies_per_role"`
	StartingCoins     int            `yaml:"starting_coins"`
	HandSize          int            `yaml:"hand_size"`
	Players           rangeFile      `yaml:"players"`
	ForcedCoup        forcedCoupFile `yaml:"forced_coup"`
	Refund            string         `yaml:"refund"`
	Replacement       string         `yaml:"replacement"`
}

var refundPolicies = map[string]game.RefundPolicy{
	"never":      game.RefundNever,
	"challenged": game.RefundWhenChallenged,
	"cancelled":  game.RefundWhenCancelled,
}

var replaceTimings = map[string]game.ReplaceTiming{
	"before_loss": game.ReplaceBeforeLoss,
	"after_loss":  game.ReplaceAfterLoss,
}

// LoadRuleSet reads and validates a rule variant from a YAML file.
func LoadRuleSet(path string) (*game.RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule set: %w", err)
	}
	defer f.Close()
	return DecodeRuleSet(f)
}

// DecodeRuleSet parses a YAML rule variant. Unknown fields are rejected and the
// result is validated; every failure wraps game.ErrConfig.
func DecodeRuleSet(r io.Reader) (*game.RuleSet, error) {
	var file ruleSetFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: failed to decode rule set: %w", game.ErrConfig, err)
	}

	refund, ok := refundPolicies[orDefault(file.Refund, "never")]
	if !ok {
		return nil, fmt.Errorf("%w: unknown refund policy %q", game.ErrConfig, file.Refund)
	}
	replacement, ok := replaceTimings[orDefault(file.Replacement, "before_loss")]
	if !ok {
		return nil, fmt.Errorf("%w: unknown replacement timing %q", game.ErrConfig, file.Replacement)
	}

	rules := &game.RuleSet{
		DeckCopiesPerRole:   file.DeckCopiesPerRole,
		StartingCoins:       file.StartingCoins,
		HandSize:            file.HandSize,
		MinPlayers:          file.Players.Min,
		MaxPlayers:          file.Players.Max,
		ForcedCoupThreshold: file.ForcedCoup.Threshold,
		ForcedCoupCost:      file.ForcedCoup.Cost,
		Refund:              refund,
		Replacement:         replacement,
	}
	for _, r := range file.Roles {
		rules.Roles = append(rules.Roles, game.RoleRule{
			Role:    game.Role(r.Name),
			Actions: actionKinds(r.Actions),
			Blocks:  actionKinds(r.Blocks),
		})
	}
	for _, a := range file.Actions {
		rules.Actions = append(rules.Actions, game.ActionRule{
			Kind:               game.ActionKind(a.Kind),
			Cost:               a.Cost,
			RequiresTarget:     a.Target,
			AllowSelfTarget:    a.SelfTarget,
			Challengeable:      a.Challengeable,
			BlockableBy:        roles(a.BlockableBy),
			BlockChallengeable: a.BlockChallengeable,
			Effect: game.Effect{
				Gain:  a.Effect.Gain,
				Steal: a.Effect.Steal,
				Kill:  a.Effect.Kill,
				Draw:  a.Effect.Draw,
			},
		})
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func actionKinds(names []string) []game.ActionKind {
	var kinds []game.ActionKind
	for _, n := range names {
		kinds = append(kinds, game.ActionKind(n))
	}
	return kinds
}

func roles(names []string) []game.Role {
	var out []game.Role
	for _, n := range names {
		out = append(out, game.Role(n))
	}
	return out
}
