//go:build glassdebug

package glass

const debugAssertions = true
