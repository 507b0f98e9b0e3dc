//go:build !glassdebug

package glass

// debugAssertions turns invariant violations into panics. Enable with the
// glassdebug build tag.
const debugAssertions = false
