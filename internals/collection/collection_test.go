package collection

import (
	"context"
	"errors"
)

// testRecord meniru bentuk record halaman admin (id + field domain + enum +
// tags) untuk seluruh test package ini.
type testRecord struct {
	ID       string
	Title    string
	Body     string
	Author   string
	Status   string
	Category string
	Email    string
	Amount   int
	Tags     []string
}

func testSchema() Schema[testRecord] {
	return Schema[testRecord]{
		Name:  "fatwa",
		GetID: func(r testRecord) string { return r.ID },
		SetID: func(r *testRecord, id string) { r.ID = id },
		SearchText: func(r testRecord) []string {
			return []string{r.Title, r.Body, r.Author}
		},
		Filters: map[string]func(testRecord) string{
			"status":   func(r testRecord) string { return r.Status },
			"category": func(r testRecord) string { return r.Category },
		},
		Defaults: func() testRecord {
			return testRecord{Status: "Pending"}
		},
		SeedLists: func(r testRecord) map[string][]string {
			return map[string][]string{"tags": r.Tags}
		},
		CommitLists: func(r *testRecord, lists map[string][]string) {
			r.Tags = append([]string(nil), lists["tags"]...)
		},
		Rules: []Rule[testRecord]{
			Required("title", func(r testRecord) string { return r.Title }, "Title is required"),
			MaxLen("title", 200, func(r testRecord) string { return r.Title }, "Title must be less than 200 characters"),
			Required("body", func(r testRecord) string { return r.Body }, "Description is required"),
			MinLen("body", 10, func(r testRecord) string { return r.Body }, "Description must be at least 10 characters"),
			Email("email", func(r testRecord) string { return r.Email }, "Invalid email format"),
		},
		Counters: []Counter[testRecord]{
			{Name: "approved", Match: func(r testRecord) bool { return r.Status == "Approved" }},
			{Name: "pending", Match: func(r testRecord) bool { return r.Status == "Pending" }},
			{Name: "rejected", Match: func(r testRecord) bool { return r.Status == "Rejected" }},
		},
	}
}

func validBody() string { return "Penjelasan hukum yang cukup panjang." }

// fakeRemote: Remote in-memory untuk test dispatcher; bisa dipaksa gagal.
type fakeRemote struct {
	fail     error
	assignID string
	created  []testRecord
	updated  []testRecord
	deleted  []string
}

func (f *fakeRemote) Create(_ context.Context, rec testRecord) (testRecord, error) {
	if f.fail != nil {
		return testRecord{}, f.fail
	}
	if f.assignID != "" {
		rec.ID = f.assignID
	}
	f.created = append(f.created, rec)
	return rec, nil
}

func (f *fakeRemote) Update(_ context.Context, id string, rec testRecord) (testRecord, error) {
	if f.fail != nil {
		return testRecord{}, f.fail
	}
	rec.ID = id
	f.updated = append(f.updated, rec)
	return rec, nil
}

func (f *fakeRemote) Delete(_ context.Context, id string) error {
	if f.fail != nil {
		return f.fail
	}
	f.deleted = append(f.deleted, id)
	return nil
}

var errRemoteDown = errors.New("remote down")

// recordingNotifier mencatat semua notifikasi yang dikirim dispatcher.
type recordingNotifier struct {
	kinds    []NotifyKind
	messages []string
}

func (n *recordingNotifier) Notify(kind NotifyKind, message string) {
	n.kinds = append(n.kinds, kind)
	n.messages = append(n.messages, message)
}
