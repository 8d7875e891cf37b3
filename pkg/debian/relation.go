package debian

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/aptflow/raptobo/pkg/apterr"
)

// RelOp is a dependency-relation comparison operator, or ANY when an atom
// carries no version annotation (match by name alone).
type RelOp string

const (
	LT  RelOp = "<<"
	LTE RelOp = "<="
	EQ  RelOp = "="
	GTE RelOp = ">="
	GT  RelOp = ">>"
	ANY RelOp = "" // no version annotation; matches by name alone
)

func parseOp(s string) (RelOp, error) {
	switch s {
	case "<<", "<=", "=", ">=", ">>":
		return RelOp(s), nil
	default:
		return "", apterr.Errorf(apterr.InvalidRelation, "unknown operator %q", s)
	}
}

// satisfies reports whether cmp (the sign of candidate-version minus
// relation-version) satisfies op.
func (op RelOp) satisfies(cmp int) bool {
	switch op {
	case LT:
		return cmp < 0
	case LTE:
		return cmp <= 0
	case EQ:
		return cmp == 0
	case GTE:
		return cmp >= 0
	case GT:
		return cmp > 0
	default:
		return true
	}
}

// Relation is one atom of a dependency-relation expression, per Debian
// Policy §7.1: a package name, an optional version constraint, and a
// recursive alternative chain reachable through '|'.
type Relation struct {
	Package     string
	Op          RelOp
	Version     *Version
	Alternative *Relation
}

// ParseRelationList parses the value of a relationship field (Depends,
// Recommends, Conflicts, ...) into its comma-separated terms. A term that
// fails to parse is logged and dropped; the rest of the list is returned.
func ParseRelationList(value string) []Relation {
	var out []Relation
	for _, term := range strings.Split(value, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		rel, err := parseTerm(term)
		if err != nil {
			log.Error().Err(err).Msgf("debian: dropping relation term %q", term)
			continue
		}
		out = append(out, rel)
	}
	return out
}

// parseTerm parses one '|'-chained term (an atom followed by zero or more
// alternatives) into its head Relation, right-associative.
func parseTerm(term string) (Relation, error) {
	head, rest, hasAlt := strings.Cut(term, "|")
	head = strings.TrimSpace(head)

	var alt *Relation
	if hasAlt {
		a, err := parseTerm(strings.TrimSpace(rest))
		if err != nil {
			return Relation{}, err
		}
		alt = &a
	}

	name, versionClause, hasVersion := strings.Cut(head, "(")
	name = strings.TrimSpace(name)
	if !hasVersion {
		return Relation{Package: name, Op: ANY, Alternative: alt}, nil
	}

	versionClause = strings.TrimSpace(versionClause)
	if !strings.HasSuffix(versionClause, ")") {
		return Relation{}, apterr.Errorf(apterr.InvalidRelation, "malformed version annotation %q", versionClause)
	}
	inner := strings.TrimSpace(versionClause[:len(versionClause)-1])

	opStr, verStr, ok := strings.Cut(inner, " ")
	if !ok {
		return Relation{}, apterr.Errorf(apterr.InvalidRelation, "missing version in %q", inner)
	}
	op, err := parseOp(strings.TrimSpace(opStr))
	if err != nil {
		return Relation{}, err
	}
	ver, err := ParseVersion(strings.TrimSpace(verStr))
	if err != nil {
		return Relation{}, err
	}

	return Relation{Package: name, Op: op, Version: &ver, Alternative: alt}, nil
}

// Matches walks the alternative chain and reports whether the candidate
// (name, version) satisfies any alternative: one whose name matches and
// which either carries no version or whose operator the candidate's
// version satisfies.
func (r *Relation) Matches(candidateName string, candidateVersion Version) bool {
	for node := r; node != nil; node = node.Alternative {
		if node.Package != candidateName {
			continue
		}
		if node.Version == nil {
			return true
		}
		cmp, err := Compare(candidateVersion, *node.Version)
		if err == nil && node.Op.satisfies(cmp) {
			return true
		}
	}
	return false
}
