package collection

import "errors"

var (
	ErrDuplicateID = errors.New("collection: duplicate id")
	ErrNotFound    = errors.New("collection: record not found")
)

// Store menyimpan salinan in-session semua record satu halaman, berurutan,
// unik per id. Dimiliki eksklusif oleh satu page/request — tidak aman untuk
// dipakai lintas goroutine.
type Store[T any] struct {
	schema  Schema[T]
	records []T
	index   map[string]int

	// OnChange dipanggil setelah tiap mutasi sukses, supaya view terfilter dan
	// stats bisa dihitung ulang tanpa langkah refresh eksplisit dari caller.
	OnChange func()
}

func NewStore[T any](schema Schema[T]) *Store[T] {
	return &Store[T]{
		schema: schema,
		index:  map[string]int{},
	}
}

// Load mengganti isi store sepenuhnya — tanpa merge, last load wins.
// Duplikat id di input diabaikan setelah kemunculan pertama.
func (st *Store[T]) Load(initial []T) {
	st.records = st.records[:0]
	st.index = make(map[string]int, len(initial))
	for _, rec := range initial {
		id := st.schema.GetID(rec)
		if _, dup := st.index[id]; dup {
			continue
		}
		st.index[id] = len(st.records)
		st.records = append(st.records, rec)
	}
	st.notify()
}

// Insert menambahkan record baru di akhir; gagal jika id sudah ada.
func (st *Store[T]) Insert(rec T) error {
	id := st.schema.GetID(rec)
	if _, exists := st.index[id]; exists {
		return ErrDuplicateID
	}
	st.index[id] = len(st.records)
	st.records = append(st.records, rec)
	st.notify()
	return nil
}

// Replace mengganti record dengan id tertentu; id lama selalu dipertahankan
// walau record yang dikirim membawa id berbeda/kosong.
func (st *Store[T]) Replace(id string, rec T) error {
	i, exists := st.index[id]
	if !exists {
		return ErrNotFound
	}
	st.schema.SetID(&rec, id)
	st.records[i] = rec
	st.notify()
	return nil
}

// Remove idempoten: no-op jika id tidak ada.
func (st *Store[T]) Remove(id string) {
	i, exists := st.index[id]
	if !exists {
		return
	}
	st.records = append(st.records[:i], st.records[i+1:]...)
	delete(st.index, id)
	for j := i; j < len(st.records); j++ {
		st.index[st.schema.GetID(st.records[j])] = j
	}
	st.notify()
}

func (st *Store[T]) Find(id string) (T, bool) {
	if i, exists := st.index[id]; exists {
		return st.records[i], true
	}
	var zero T
	return zero, false
}

// All mengembalikan salinan seluruh record (urutan insert).
func (st *Store[T]) All() []T {
	out := make([]T, len(st.records))
	copy(out, st.records)
	return out
}

func (st *Store[T]) Len() int { return len(st.records) }

// Apply mengembalikan subset yang lolos FilterState saat ini.
func (st *Store[T]) Apply(fs FilterState) []T {
	return Apply(st.schema, st.records, fs)
}

// Stats dihitung dari koleksi UNFILTERED — list mengikuti filter, stats tidak.
func (st *Store[T]) Stats() map[string]int {
	return ComputeStats(st.schema, st.records)
}

// Paginate mengambil jendela slice [offset, offset+limit) dengan clamp di kedua
// ujung; offset melewati akhir koleksi menghasilkan halaman kosong.
func Paginate[T any](items []T, offset, limit int) []T {
	start := offset
	if start < 0 {
		start = 0
	}
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if limit < 0 || end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func (st *Store[T]) notify() {
	if st.OnChange != nil {
		st.OnChange()
	}
}
