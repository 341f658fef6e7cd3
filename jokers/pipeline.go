// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jokers

// Apply folds ctx.Jokers over ctx.Votes in order and returns the final
// votes. Each joker sees the output of the previous one. ctx.Votes itself is
// left untouched; with no jokers the result is a copy of it.
func Apply(ctx VoteContext) []int {
	votes := cloneVotes(ctx.Votes)
	for i, j := range ctx.Jokers {
		step := ctx
		step.Votes = votes
		step.Index = i
		step.depth = 0
		votes = j.Transform(step)
	}
	return votes
}
