package collection

import "strings"

// All adalah sentinel nilai filter "semua" — filter dengan nilai ini tidak membatasi apa pun.
const All = "ALL"

// FilterState: teks pencarian + pilihan filter kategori. Transient, per halaman,
// tidak pernah dipersist; subset terfilter selalu fungsi murni dari (store, FilterState).
type FilterState struct {
	Search  string
	Filters map[string]string
}

// Matches: AND dari (a) substring search case-insensitive atas field teks schema
// (search kosong selalu lolos) dan (b) setiap filter kategori harus sama persis
// (case-sensitive, casing kanonik enum) atau bernilai sentinel All.
func Matches[T any](s Schema[T], rec T, fs FilterState) bool {
	if q := strings.TrimSpace(fs.Search); q != "" {
		q = strings.ToLower(q)
		found := false
		if s.SearchText != nil {
			for _, txt := range s.SearchText(rec) {
				if strings.Contains(strings.ToLower(txt), q) {
					found = true
					break
				}
			}
		}
		if !found {
			return false
		}
	}

	for name, want := range fs.Filters {
		if want == "" || want == All {
			continue
		}
		get, configured := s.Filters[name]
		if !configured {
			continue
		}
		if get(rec) != want {
			return false
		}
	}
	return true
}

// Apply memfilter slice record; idempoten — memfilter hasil filter dengan
// FilterState yang sama menghasilkan set yang sama.
func Apply[T any](s Schema[T], records []T, fs FilterState) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if Matches(s, rec, fs) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterStateFromQuery membangun FilterState dari query map (?search=&status=&...),
// dengan All sebagai default untuk filter yang tidak dikirim.
func FilterStateFromQuery[T any](s Schema[T], query func(key string, def ...string) string) FilterState {
	fs := FilterState{
		Search:  query("search", ""),
		Filters: make(map[string]string, len(s.Filters)),
	}
	for name := range s.Filters {
		fs.Filters[name] = query(name, All)
	}
	return fs
}
