// Package collection berisi pola managed-list yang dipakai semua modul admin:
// store in-memory per halaman, filter predicate (search + filter kategori),
// statistik turunan, form session (buffer edit), dan mutation dispatcher.
// Satu implementasi generic, di-instansiasi per domain lewat Schema.
package collection

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Schema mendeskripsikan satu tipe record domain untuk package ini.
type Schema[T any] struct {
	// Name dipakai di pesan notifikasi ("fatwa", "event", dst).
	Name string

	GetID func(T) string
	SetID func(*T, string)

	// SearchText mengembalikan field teks yang ikut free-text search.
	SearchText func(T) []string

	// Filters: nama filter kategori → accessor nilai kanonik record.
	Filters map[string]func(T) string

	// Defaults membangun record kosong untuk form create.
	Defaults func() T

	// SeedLists / CommitLists memetakan transient list field (tags, references,
	// attachments) keluar-masuk record selama form terbuka.
	SeedLists   func(T) map[string][]string
	CommitLists func(*T, map[string][]string)

	Rules    []Rule[T]
	Counters []Counter[T]
}

func (s Schema[T]) defaults() T {
	if s.Defaults != nil {
		return s.Defaults()
	}
	var zero T
	return zero
}

/* ===============================
   Validation rules
=================================*/

// Rule memeriksa satu constraint pada record; return pesan error atau "" jika lolos.
type Rule[T any] struct {
	Field string
	Check func(T) string
}

// ValidateRecord menjalankan SEMUA rule dan mengumpulkan seluruh pelanggaran
// (tidak berhenti di kegagalan pertama — UI menampilkan semua inline error sekaligus).
func ValidateRecord[T any](s Schema[T], rec T) map[string][]string {
	errs := map[string][]string{}
	for _, r := range s.Rules {
		if msg := r.Check(rec); msg != "" {
			errs[r.Field] = append(errs[r.Field], msg)
		}
	}
	return errs
}

var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

func Required[T any](field string, get func(T) string, msg string) Rule[T] {
	return Rule[T]{Field: field, Check: func(rec T) string {
		if strings.TrimSpace(get(rec)) == "" {
			return msg
		}
		return ""
	}}
}

// MaxLen: panjang == max masih valid, max+1 invalid.
func MaxLen[T any](field string, max int, get func(T) string, msg string) Rule[T] {
	return Rule[T]{Field: field, Check: func(rec T) string {
		if utf8.RuneCountInString(get(rec)) > max {
			return msg
		}
		return ""
	}}
}

// MinLen: panjang == min masih valid, min-1 invalid. String kosong dibiarkan
// lolos di sini — kewajiban isi ditangani Required supaya error-nya terpisah.
func MinLen[T any](field string, min int, get func(T) string, msg string) Rule[T] {
	return Rule[T]{Field: field, Check: func(rec T) string {
		v := get(rec)
		if v != "" && utf8.RuneCountInString(v) < min {
			return msg
		}
		return ""
	}}
}

func Email[T any](field string, get func(T) string, msg string) Rule[T] {
	return Rule[T]{Field: field, Check: func(rec T) string {
		v := get(rec)
		if v != "" && !emailRe.MatchString(v) {
			return msg
		}
		return ""
	}}
}

// Positive: nilai harus > 0 (mis. goal amount donasi).
func Positive[T any](field string, get func(T) int, msg string) Rule[T] {
	return Rule[T]{Field: field, Check: func(rec T) string {
		if get(rec) <= 0 {
			return msg
		}
		return ""
	}}
}

// OneOf: nilai enum harus anggota closed set halaman — set yang sama dengan
// yang dipakai filter UI.
func OneOf[T any](field string, allowed []string, get func(T) string, msg string) Rule[T] {
	return Rule[T]{Field: field, Check: func(rec T) string {
		v := get(rec)
		if v == "" {
			return ""
		}
		for _, a := range allowed {
			if v == a {
				return ""
			}
		}
		return msg
	}}
}

// IntRange: lo <= nilai <= hi (mis. nilai rapor 0..100).
func IntRange[T any](field string, lo, hi int, get func(T) int, msg string) Rule[T] {
	return Rule[T]{Field: field, Check: func(rec T) string {
		v := get(rec)
		if v < lo || v > hi {
			return msg
		}
		return ""
	}}
}
