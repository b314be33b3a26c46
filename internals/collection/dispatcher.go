package collection

import (
	"context"
	"log"
	"strconv"
	"time"
)

type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
)

// Notifier adalah kolaborator toast/acknowledgement — fire and forget.
type Notifier interface {
	Notify(kind NotifyKind, message string)
}

// LogNotifier: implementasi sisi server, cukup ke log.
type LogNotifier struct{}

func (LogNotifier) Notify(kind NotifyKind, message string) {
	log.Printf("[NOTIFY:%s] %s", kind, message)
}

// Remote adalah backend round-trip untuk persist mutasi (API/DB).
type Remote[T any] interface {
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, rec T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Dispatcher menerjemahkan hasil submit form menjadi operasi store, opsional
// lewat Remote. Disiplin mutasi dipilih eksplisit lewat Optimistic:
//   - false (server-confirmed): store TIDAK disentuh sebelum remote sukses;
//     remote gagal → store utuh, error disurface lewat Notifier.
//   - true (optimistic): store dimutasi dulu; remote gagal → mutasi di-rollback.
//
// Remote nil berarti koleksi murni in-memory (halaman fixture/demo).
type Dispatcher[T any] struct {
	Store      *Store[T]
	Schema     Schema[T]
	Remote     Remote[T]
	Optimistic bool
	Notifier   Notifier
	Now        func() time.Time // injectable untuk test id lokal
}

func NewDispatcher[T any](store *Store[T], schema Schema[T], remote Remote[T], optimistic bool, n Notifier) *Dispatcher[T] {
	if n == nil {
		n = LogNotifier{}
	}
	return &Dispatcher[T]{
		Store:      store,
		Schema:     schema,
		Remote:     remote,
		Optimistic: optimistic,
		Notifier:   n,
		Now:        time.Now,
	}
}

// newLocalID: id turunan timestamp untuk record yang dibuat tanpa round-trip server.
func (d *Dispatcher[T]) newLocalID() string {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return strconv.FormatInt(now().UnixNano(), 10)
}

// Create memasukkan record baru. Id diberikan backend bila ada round-trip;
// kalau tidak (atau backend tidak mengisi), dipakai id lokal turunan timestamp.
func (d *Dispatcher[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T

	if d.Remote == nil {
		if d.Schema.GetID(rec) == "" {
			d.Schema.SetID(&rec, d.newLocalID())
		}
		if err := d.Store.Insert(rec); err != nil {
			d.Notifier.Notify(NotifyError, d.Schema.Name+" sudah ada (id duplikat)")
			return zero, err
		}
		d.Notifier.Notify(NotifySuccess, d.Schema.Name+" berhasil ditambahkan")
		return rec, nil
	}

	if d.Optimistic {
		if d.Schema.GetID(rec) == "" {
			d.Schema.SetID(&rec, d.newLocalID())
		}
		localID := d.Schema.GetID(rec)
		if err := d.Store.Insert(rec); err != nil {
			d.Notifier.Notify(NotifyError, d.Schema.Name+" sudah ada (id duplikat)")
			return zero, err
		}
		saved, err := d.Remote.Create(ctx, rec)
		if err != nil {
			d.Store.Remove(localID) // rollback
			d.Notifier.Notify(NotifyError, "Gagal menyimpan "+d.Schema.Name+": "+err.Error())
			return zero, err
		}
		if sid := d.Schema.GetID(saved); sid != "" && sid != localID {
			d.Store.Remove(localID)
			_ = d.Store.Insert(saved)
		} else {
			_ = d.Store.Replace(localID, saved)
		}
		d.Notifier.Notify(NotifySuccess, d.Schema.Name+" berhasil ditambahkan")
		return saved, nil
	}

	// server-confirmed: mutasi lokal menunggu remote sukses
	saved, err := d.Remote.Create(ctx, rec)
	if err != nil {
		d.Notifier.Notify(NotifyError, "Gagal menyimpan "+d.Schema.Name+": "+err.Error())
		return zero, err
	}
	if d.Schema.GetID(saved) == "" {
		d.Schema.SetID(&saved, d.newLocalID())
	}
	if err := d.Store.Insert(saved); err != nil {
		d.Notifier.Notify(NotifyError, d.Schema.Name+" sudah ada (id duplikat)")
		return zero, err
	}
	d.Notifier.Notify(NotifySuccess, d.Schema.Name+" berhasil ditambahkan")
	return saved, nil
}

// Update mengganti record by id; id dipertahankan oleh store walau payload membawa id lain.
func (d *Dispatcher[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var zero T

	prev, found := d.Store.Find(id)
	if !found {
		d.Notifier.Notify(NotifyError, d.Schema.Name+" tidak ditemukan")
		return zero, ErrNotFound
	}

	if d.Remote == nil {
		_ = d.Store.Replace(id, rec)
		updated, _ := d.Store.Find(id)
		d.Notifier.Notify(NotifySuccess, d.Schema.Name+" berhasil diperbarui")
		return updated, nil
	}

	if d.Optimistic {
		_ = d.Store.Replace(id, rec)
		saved, err := d.Remote.Update(ctx, id, rec)
		if err != nil {
			_ = d.Store.Replace(id, prev) // rollback
			d.Notifier.Notify(NotifyError, "Gagal memperbarui "+d.Schema.Name+": "+err.Error())
			return zero, err
		}
		_ = d.Store.Replace(id, saved)
		updated, _ := d.Store.Find(id)
		d.Notifier.Notify(NotifySuccess, d.Schema.Name+" berhasil diperbarui")
		return updated, nil
	}

	saved, err := d.Remote.Update(ctx, id, rec)
	if err != nil {
		d.Notifier.Notify(NotifyError, "Gagal memperbarui "+d.Schema.Name+": "+err.Error())
		return zero, err
	}
	_ = d.Store.Replace(id, saved)
	updated, _ := d.Store.Find(id)
	d.Notifier.Notify(NotifySuccess, d.Schema.Name+" berhasil diperbarui")
	return updated, nil
}

// Delete di-gate konfirmasi eksplisit: confirmed=false adalah no-op, bukan error.
func (d *Dispatcher[T]) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return nil
	}

	prev, found := d.Store.Find(id)

	if d.Remote == nil {
		d.Store.Remove(id) // idempoten
		d.Notifier.Notify(NotifySuccess, d.Schema.Name+" berhasil dihapus")
		return nil
	}

	if d.Optimistic {
		d.Store.Remove(id)
		if err := d.Remote.Delete(ctx, id); err != nil {
			if found {
				_ = d.Store.Insert(prev) // rollback
			}
			d.Notifier.Notify(NotifyError, "Gagal menghapus "+d.Schema.Name+": "+err.Error())
			return err
		}
		d.Notifier.Notify(NotifySuccess, d.Schema.Name+" berhasil dihapus")
		return nil
	}

	if err := d.Remote.Delete(ctx, id); err != nil {
		d.Notifier.Notify(NotifyError, "Gagal menghapus "+d.Schema.Name+": "+err.Error())
		return err
	}
	d.Store.Remove(id)
	d.Notifier.Notify(NotifySuccess, d.Schema.Name+" berhasil dihapus")
	return nil
}
