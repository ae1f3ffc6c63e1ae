// Package kinds supplies the built-in node-kind registry: the default data
// payload for each kind and the rule table saying which kinds may feed which.
// The graph engine resolves all per-kind behavior through this registry
// rather than hard-coding it, so products can register their own kinds or
// replace the rule set wholesale.
package kinds
