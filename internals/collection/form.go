package collection

import (
	"context"
	"strings"
)

// FormSession memegang buffer edit satu record selama form create/edit terbuka.
// Buffer adalah shallow copy — record di store tidak pernah tersentuh sampai
// Submit sukses; Discard membuang semua perubahan.
type FormSession[T any] struct {
	schema     Schema[T]
	rec        T
	lists      map[string][]string
	open       bool
	editing    bool
	originalID string
}

func NewFormSession[T any](schema Schema[T]) *FormSession[T] {
	return &FormSession[T]{schema: schema}
}

// Open memulai sesi: rec nil → template kosong dari Defaults schema (create),
// non-nil → shallow copy record yang diedit.
func (f *FormSession[T]) Open(rec *T) {
	if rec == nil {
		f.rec = f.schema.defaults()
		f.editing = false
		f.originalID = ""
	} else {
		f.rec = *rec
		f.editing = true
		f.originalID = f.schema.GetID(*rec)
	}

	f.lists = map[string][]string{}
	if f.schema.SeedLists != nil {
		for name, vals := range f.schema.SeedLists(f.rec) {
			f.lists[name] = append([]string(nil), vals...)
		}
	}
	f.open = true
}

func (f *FormSession[T]) IsOpen() bool { return f.open }
func (f *FormSession[T]) Editing() bool { return f.editing }
func (f *FormSession[T]) Record() T { return f.rec }

// Set mengubah field skalar pada buffer lewat closure.
func (f *FormSession[T]) Set(mut func(*T)) {
	mut(&f.rec)
}

// List mengembalikan salinan transient list saat ini.
func (f *FormSession[T]) List(name string) []string {
	return append([]string(nil), f.lists[name]...)
}

// AddToList menambahkan nilai iff non-empty dan belum ada (dedup case-sensitive).
func (f *FormSession[T]) AddToList(name, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	for _, v := range f.lists[name] {
		if v == value {
			return
		}
	}
	f.lists[name] = append(f.lists[name], value)
}

// RemoveFromList menghapus kemunculan exact-match pertama; no-op jika tidak ada.
func (f *FormSession[T]) RemoveFromList(name, value string) {
	for i, v := range f.lists[name] {
		if v == value {
			f.lists[name] = append(f.lists[name][:i], f.lists[name][i+1:]...)
			return
		}
	}
}

// Validate menjalankan semua rule atas buffer (termasuk transient list yang
// sudah di-commit ke salinan kerja) dan mengembalikan SEMUA pelanggaran.
func (f *FormSession[T]) Validate() map[string][]string {
	return ValidateRecord(f.schema, f.committed())
}

// Discard membatalkan sesi; buffer dan transient list dibuang.
func (f *FormSession[T]) Discard() {
	var zero T
	f.rec = zero
	f.lists = nil
	f.open = false
	f.editing = false
	f.originalID = ""
}

// Submit: validasi gagal → return error map tanpa mutasi apa pun; sukses →
// record final (transient list ter-commit) diserahkan ke dispatcher.
// Edit (id asli masih ada di store) → Update; selain itu → Create.
func (f *FormSession[T]) Submit(ctx context.Context, d *Dispatcher[T]) (T, map[string][]string, error) {
	var zero T
	if errs := f.Validate(); len(errs) > 0 {
		return zero, errs, nil
	}

	rec := f.committed()

	var (
		saved T
		err   error
	)
	if f.editing && f.originalID != "" {
		// target edit yang sudah hilang disurface sebagai error oleh dispatcher
		saved, err = d.Update(ctx, f.originalID, rec)
	} else {
		saved, err = d.Create(ctx, rec)
	}
	if err != nil {
		return zero, nil, err
	}

	f.open = false
	return saved, nil, nil
}

func (f *FormSession[T]) committed() T {
	rec := f.rec
	if f.schema.CommitLists != nil && f.lists != nil {
		f.schema.CommitLists(&rec, f.lists)
	}
	return rec
}
