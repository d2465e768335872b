package pack

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipepacks/internal/domain"
)

// Validate checks that every pack has a usable key and that keys are
// unique. Keys become part of output file names.
func Validate(packs []domain.Pack) error {
	seen := make(map[string]struct{}, len(packs))
	for i, p := range packs {
		switch {
		case strings.TrimSpace(p.Key) == "":
			return fmt.Errorf("%w: pack #%d has no key", domain.ErrInvalidPack, i+1)
		case strings.ContainsAny(p.Key, `/\ `):
			return fmt.Errorf("%w: key %q", domain.ErrInvalidPack, p.Key)
		}
		if _, dup := seen[p.Key]; dup {
			return fmt.Errorf("%w: %q", domain.ErrDuplicatePack, p.Key)
		}
		seen[p.Key] = struct{}{}
	}
	return nil
}

// Select returns the packs named by keys, in the order given. An empty
// keys list selects everything.
func Select(packs []domain.Pack, keys []string) ([]domain.Pack, error) {
	if len(keys) == 0 {
		return packs, nil
	}
	byKey := make(map[string]domain.Pack, len(packs))
	for _, p := range packs {
		byKey[p.Key] = p
	}

	out := make([]domain.Pack, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		p, ok := byKey[k]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPack, k)
		}
		out = append(out, p)
	}
	return out, nil
}
