// meta/meta.go
package meta

// DefaultDepth is the search depth in plies when none is given.
const DefaultDepth = 4

// DefaultStrategy plays both sides unless overridden.
const DefaultStrategy = "alphabeta"

// DefaultCachePolicy keys memo entries on the board alone.
const DefaultCachePolicy = "board"

// DefaultGames is the number of games played per match-up.
const DefaultGames = 1
