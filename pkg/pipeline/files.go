package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// ExpandFiles turns the user's file string into full file names.
//
// In filename mode files is a comma-separated list of names. In index mode it
// is an index string such as "1-3,7"; each index is zero-padded to
// cfg.IndexWidth and wrapped in cfg.Prefix and cfg.Suffix.
func ExpandFiles(cfg Config, files string) ([]string, error) {
	switch cfg.FileReadMode {
	case ReadFilename:
		var names []string
		for _, f := range strings.Split(files, ",") {
			if f = strings.TrimSpace(f); f != "" {
				names = append(names, f)
			}
		}
		if len(names) == 0 {
			return nil, ErrNoFiles
		}
		return names, nil

	case ReadIndex:
		indices, err := ParseIndexString(files)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(indices))
		for i, idx := range indices {
			names[i] = fmt.Sprintf("%s%0*d%s", cfg.Prefix, cfg.IndexWidth, idx, cfg.Suffix)
		}
		return names, nil

	default:
		return nil, fmt.Errorf("%w: unknown file read mode %q", ErrInvalidConfig, cfg.FileReadMode)
	}
}

// MaxIndexCount bounds the number of indices one index string may expand to.
const MaxIndexCount = 10000

// ParseIndexString parses comma-separated indices and inclusive ranges,
// e.g. "1-3,7" gives [1 2 3 7]. Order is preserved. Strings expanding to
// more than MaxIndexCount indices are rejected.
func ParseIndexString(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrNoFiles
	}

	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty element in %q", ErrInvalidIndexString, s)
		}

		lo, hi, isRange := strings.Cut(part, "-")
		start, err := parseIndex(lo)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIndexString, part)
		}
		if !isRange {
			if len(out) >= MaxIndexCount {
				return nil, fmt.Errorf("%w: more than %d indices", ErrInvalidIndexString, MaxIndexCount)
			}
			out = append(out, start)
			continue
		}

		end, err := parseIndex(hi)
		if err != nil || end < start {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIndexString, part)
		}
		if end-start >= MaxIndexCount-len(out) {
			return nil, fmt.Errorf("%w: %q expands past %d indices", ErrInvalidIndexString, part, MaxIndexCount)
		}
		for i := start; i <= end; i++ {
			out = append(out, i)
		}
	}
	return out, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// GroupExposures splits files into the subsets processed by one pass of the
// stages: singletons in A mode, consecutive pairs in A-B mode.
func GroupExposures(mode string, files []string) ([][]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	switch mode {
	case ReductionA:
		subsets := make([][]string, len(files))
		for i, f := range files {
			subsets[i] = []string{f}
		}
		return subsets, nil

	case ReductionAB:
		if len(files)%2 != 0 {
			return nil, fmt.Errorf("%w: got %d", ErrOddExposureCount, len(files))
		}
		subsets := make([][]string, 0, len(files)/2)
		for i := 0; i < len(files); i += 2 {
			subsets = append(subsets, []string{files[i], files[i+1]})
		}
		return subsets, nil

	default:
		return nil, fmt.Errorf("%w: unknown reduction mode %q", ErrInvalidConfig, mode)
	}
}
