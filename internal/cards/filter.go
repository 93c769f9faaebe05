package cards

import "strings"

type FilterOptions struct {
	Tags      []string `json:"tags"`
	FreeWords string   `json:"free_words"`
	HasAnswer bool     `json:"has_answer"`
	Limit     int      `json:"limit"`
}

func containsAny(hay []string, needles []string) bool {
	for _, n := range needles {
		n = strings.ToLower(n)
		for _, h := range hay {
			if strings.Contains(strings.ToLower(h), n) {
				return true
			}
		}
	}
	return false
}

// Filter keeps the entries matching every given option, in order.
func Filter(entries []Entry, opt FilterOptions) []Entry {
	var out []Entry
	for _, e := range entries {
		if opt.Limit > 0 && len(out) >= opt.Limit {
			break
		}
		if opt.HasAnswer && e.Answer == "" {
			continue
		}
		if len(opt.Tags) > 0 {
			if !containsAny(e.Tags, opt.Tags) {
				continue
			}
		}
		if opt.FreeWords != "" {
			hay := strings.ToLower(e.Clue + " " + e.Answer + " " + strings.Join(e.Tags, " "))
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				if !strings.Contains(hay, strings.ToLower(k)) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}
