package puzzle

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/planar"
)

// identifications returns the identification isometries for cfg together
// with their inverses, deduplicated. The home tile is boundary.
func identifications(cfg Config, boundary planar.Polygon) ([]conformal.Isometry, error) {
	var base []conformal.Isometry
	switch {
	case len(cfg.Identifications) > 0:
		for i, id := range cfg.Identifications {
			iso, err := edgeIdentification(boundary, id)
			if err != nil {
				return nil, fmt.Errorf("%w: identification %d: %w", ErrIdentification, i, err)
			}
			base = append(base, iso)
		}
	case cfg.GroupRelations != "":
		words, err := parseRelations(cfg.GroupRelations)
		if err != nil {
			return nil, err
		}
		limit := cfg.Tiling.P * cfg.ExpectedNumColors * 2
		base = relationIdentifications(boundary, words, limit)
	}

	var out []conformal.Isometry
	for _, iso := range base {
		for _, cand := range []conformal.Isometry{iso, iso.Inverse()} {
			if !cand.IsIdentity() && !containsIsometry(out, cand) {
				out = append(out, cand)
			}
		}
	}
	return out, nil
}

// edgeIdentification reflects the home tile across its own edges in turn,
// then fits home vertex k to new vertex k+Rotation.
func edgeIdentification(home planar.Polygon, id IdentificationConfig) (conformal.Isometry, error) {
	p := home.NumSides()
	b := home.Clone()
	for _, e := range id.Edges {
		if e < 0 || e >= p {
			return conformal.Isometry{}, fmt.Errorf("edge %d out of range", e)
		}
		b = b.Reflect(b.Segments[e].Circle())
	}
	if b.HasInfinitePoints() {
		return conformal.Isometry{}, fmt.Errorf("image reaches infinity")
	}

	rot := ((id.Rotation % p) + p) % p
	hv, w := home.Vertices(), b.Vertices()
	from := [3]complex128{hv[0], hv[1], hv[2]}
	to := [3]complex128{w[rot], w[(rot+1)%p], w[(rot+2)%p]}
	return conformal.FitIsometry(from, to, len(id.Edges)%2 == 1), nil
}

// mirrors returns the three mirrors of the fundamental triangle (center,
// vertex 0, midpoint of the last edge): a through the center and vertex 0,
// b through the center and the edge midpoint, c along the edge.
func mirrors(home planar.Polygon) map[rune]conformal.Isometry {
	v0 := home.Vertices()[0]
	last := home.Segments[home.NumSides()-1]
	return map[rune]conformal.Isometry{
		'a': conformal.ReflectionIsometry(conformal.NewLine(0, v0)),
		'b': conformal.ReflectionIsometry(conformal.NewLine(0, 1)),
		'c': conformal.ReflectionIsometry(last.Circle()),
	}
}

// parseRelations splits a relation string into words over a, b and c.
// Words are separated by commas or spaces; "(w)n" repeats w n times.
func parseRelations(s string) ([]string, error) {
	var words []string
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
		w, rest, err := expandWord(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: relation %q: %w", ErrInvalidConfig, tok, err)
		}
		if rest != "" {
			return nil, fmt.Errorf("%w: relation %q: unbalanced ')'", ErrInvalidConfig, tok)
		}
		if w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

// expandWord expands s up to an unmatched ')' and returns the remainder
// starting at that parenthesis.
func expandWord(s string) (string, string, error) {
	var b strings.Builder
	for len(s) > 0 {
		switch r := rune(s[0]); {
		case r == 'a' || r == 'b' || r == 'c':
			b.WriteRune(r)
			s = s[1:]
		case r == '(':
			inner, rest, err := expandWord(s[1:])
			if err != nil {
				return "", "", err
			}
			if rest == "" {
				return "", "", fmt.Errorf("missing ')'")
			}
			rest = rest[1:]
			n := 0
			for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
				n = n*10 + int(rest[0]-'0')
				rest = rest[1:]
			}
			if n == 0 {
				n = 1
			}
			b.WriteString(strings.Repeat(inner, n))
			s = rest
		case r == ')':
			return b.String(), s, nil
		default:
			return "", "", fmt.Errorf("unexpected %q", r)
		}
	}
	return b.String(), "", nil
}

// maxRelationIsometries bounds the conjugation closure when no color budget
// is configured.
const maxRelationIsometries = 1024

// relationIdentifications composes the mirror reflections of every word and
// closes the set under conjugation by the mirrors, up to limit elements.
func relationIdentifications(home planar.Polygon, words []string, limit int) []conformal.Isometry {
	gens := mirrors(home)
	var set []conformal.Isometry
	for _, w := range words {
		iso := conformal.IdentityIsometry()
		for _, r := range w {
			iso = iso.Mul(gens[r])
		}
		if !iso.IsIdentity() && !containsIsometry(set, iso) {
			set = append(set, iso)
		}
	}

	if limit <= 0 {
		limit = maxRelationIsometries
	}
	order := []rune{'a', 'b', 'c'}
	for grew := true; grew && len(set) < limit; {
		grew = false
		for i := 0; i < len(set); i++ {
			for _, r := range order {
				g := gens[r]
				conj := g.Mul(set[i]).Mul(g)
				if conj.IsIdentity() || containsIsometry(set, conj) {
					continue
				}
				set = append(set, conj)
				grew = true
				if len(set) >= limit {
					return set
				}
			}
		}
	}
	return set
}

func containsIsometry(set []conformal.Isometry, iso conformal.Isometry) bool {
	for _, s := range set {
		if s.Equal(iso) {
			return true
		}
	}
	return false
}
