package collection

import "math"

// Counter: satu angka statistik bernama, dihitung dari record yang match.
type Counter[T any] struct {
	Name  string
	Match func(T) bool
}

// ComputeStats menghitung total + semua counter schema dalam satu pass O(n).
// Koleksi kosong menghasilkan semua counter nol. Input selalu store UNFILTERED:
// mengubah FilterState tidak boleh mengubah hasil ini.
func ComputeStats[T any](s Schema[T], records []T) map[string]int {
	stats := make(map[string]int, len(s.Counters)+1)
	stats["total"] = len(records)
	for _, c := range s.Counters {
		stats[c.Name] = 0
	}
	for _, rec := range records {
		for _, c := range s.Counters {
			if c.Match(rec) {
				stats[c.Name]++
			}
		}
	}
	return stats
}

// CountBy mengelompokkan record berdasarkan nilai satu field enum.
func CountBy[T any](records []T, key func(T) string) map[string]int {
	out := map[string]int{}
	for _, rec := range records {
		out[key(rec)]++
	}
	return out
}

// Percentage membulatkan part/total ke persen; total 0 → 0, tanpa pembagian nol.
func Percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// AverageBy merata-rata nilai numerik; koleksi kosong → 0.
func AverageBy[T any](records []T, val func(T) int) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range records {
		sum += val(rec)
	}
	return float64(sum) / float64(len(records))
}
