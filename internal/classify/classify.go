// Package classify maps a discovered scan item to the policy-facing
// CandidateType family it belongs to, and resolves the user-facing
// cleanup-scope token grammar down to a concrete set of those types.
package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kodelint/next-prune/internal/scan"
)

// CandidateType is the coarse, policy-facing family a ScanItem is
// sorted into, independent of where it was discovered.
type CandidateType string

const (
	CandidateArtifact     CandidateType = "artifact"
	CandidateAsset        CandidateType = "asset"
	CandidateNodeModules  CandidateType = "node_modules"
	CandidatePmCache      CandidateType = "pm-cache"
)

var (
	nodeModulesRe = regexp.MustCompile(`(^|/)node_modules(/|$)`)
	pmCacheRes    = []*regexp.Regexp{
		regexp.MustCompile(`(^|/)\.pnpm-store(/|$)`),
		regexp.MustCompile(`(^|/)\.pnpm-cache(/|$)`),
		regexp.MustCompile(`(^|/)\.npm(/|$)`),
		regexp.MustCompile(`(^|/)\.yarn/cache(/|$)`),
		regexp.MustCompile(`(^|/)\.yarn/unplugged(/|$)`),
	}
)

// Classify derives a CandidateType for a scanned item.
func Classify(item scan.ScanItem) CandidateType {
	if item.CleanupType == scan.CleanupTypeAsset {
		return CandidateAsset
	}
	if item.CleanupType == scan.CleanupTypePmCache {
		return CandidatePmCache
	}
	if item.CleanupType == scan.CleanupTypeWorkspaceNodeModules {
		return CandidateNodeModules
	}

	normalized := strings.ToLower(strings.ReplaceAll(item.Path, `\`, "/"))
	if nodeModulesRe.MatchString(normalized) {
		return CandidateNodeModules
	}
	for _, re := range pmCacheRes {
		if re.MatchString(normalized) {
			return CandidatePmCache
		}
	}
	return CandidateArtifact
}

// UnknownScopeTokenError reports a cleanup-scope token that doesn't
// match any accepted grammar entry.
type UnknownScopeTokenError struct {
	Token string
}

func (e *UnknownScopeTokenError) Error() string {
	return fmt.Sprintf("unknown cleanup-scope token %q", e.Token)
}

var scopeTokenExpansions = map[string][]CandidateType{
	"default":       {CandidateArtifact, CandidateAsset, CandidateNodeModules, CandidatePmCache},
	"all":           {CandidateArtifact, CandidateAsset, CandidateNodeModules, CandidatePmCache},
	"cold-storage":  {CandidateArtifact, CandidateAsset, CandidateNodeModules, CandidatePmCache},
	"coldstorage":   {CandidateArtifact, CandidateAsset, CandidateNodeModules, CandidatePmCache},
	"archive":       {CandidateArtifact, CandidateAsset, CandidateNodeModules, CandidatePmCache},
	"project":       {CandidateArtifact, CandidateAsset, CandidateNodeModules, CandidatePmCache},
	"workspace":     {CandidateArtifact, CandidateAsset, CandidateNodeModules, CandidatePmCache},
	"safe":          {CandidateArtifact, CandidateAsset},
	"artifacts":     {CandidateArtifact, CandidateAsset},
	"artifact":      {CandidateArtifact, CandidateAsset},
	"node-modules":  {CandidateNodeModules},
	"node_modules":  {CandidateNodeModules},
	"nodemodules":   {CandidateNodeModules},
	"pm-caches":     {CandidatePmCache},
	"pm_caches":     {CandidatePmCache},
	"pmcaches":      {CandidatePmCache},
}

// ResolveScopeTokens parses a comma-separated cleanup-scope token
// string into the set of allowed CandidateTypes, applying
// includeNodeModules/includeProjectLocalPmCaches exclusions afterward.
// An empty or whitespace-only input allows every type. An unrecognized
// token is a structured, fail-fast error.
func ResolveScopeTokens(raw string, includeNodeModules, includeProjectLocalPmCaches bool) (map[CandidateType]bool, error) {
	trimmed := strings.TrimSpace(raw)
	allowed := make(map[CandidateType]bool)

	if trimmed == "" {
		allowed[CandidateArtifact] = true
		allowed[CandidateAsset] = true
		allowed[CandidateNodeModules] = true
		allowed[CandidatePmCache] = true
	} else {
		for _, tok := range strings.Split(trimmed, ",") {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok == "" {
				continue
			}
			expansion, ok := scopeTokenExpansions[tok]
			if !ok {
				return nil, &UnknownScopeTokenError{Token: tok}
			}
			for _, t := range expansion {
				allowed[t] = true
			}
		}
	}

	if !includeNodeModules {
		delete(allowed, CandidateNodeModules)
	}
	if !includeProjectLocalPmCaches {
		delete(allowed, CandidatePmCache)
	}
	return allowed, nil
}
