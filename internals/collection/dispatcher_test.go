package collection

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherCreateAssignsTimestampID(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	d := NewDispatcher(st, s, nil, false, &recordingNotifier{})
	fixed := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	d.Now = func() time.Time { return fixed }

	saved, err := d.Create(context.Background(), testRecord{Title: "a", Body: validBody()})
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(fixed.UnixNano(), 10), saved.ID)

	got, found := st.Find(saved.ID)
	require.True(t, found)
	assert.Equal(t, saved, got)
}

func TestDispatcherCreateKeepsBackendID(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	remote := &fakeRemote{assignID: "srv-99"}
	d := NewDispatcher(st, s, remote, false, &recordingNotifier{})

	saved, err := d.Create(context.Background(), testRecord{Title: "a", Body: validBody()})
	require.NoError(t, err)
	assert.Equal(t, "srv-99", saved.ID)
	_, found := st.Find("srv-99")
	assert.True(t, found)
}

func TestDispatcherServerConfirmedFailureLeavesStoreUnchanged(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	st.Load([]testRecord{{ID: "f1", Title: "asli"}})
	n := &recordingNotifier{}
	remote := &fakeRemote{fail: errRemoteDown}
	d := NewDispatcher(st, s, remote, false, n)

	_, err := d.Create(context.Background(), testRecord{Title: "baru"})
	assert.ErrorIs(t, err, errRemoteDown)
	assert.Equal(t, 1, st.Len())

	_, err = d.Update(context.Background(), "f1", testRecord{Title: "diubah"})
	assert.ErrorIs(t, err, errRemoteDown)
	got, _ := st.Find("f1")
	assert.Equal(t, "asli", got.Title)

	err = d.Delete(context.Background(), "f1", true)
	assert.ErrorIs(t, err, errRemoteDown)
	assert.Equal(t, 1, st.Len())

	// setiap kegagalan disurface sekali lewat notifier
	require.Len(t, n.kinds, 3)
	for _, k := range n.kinds {
		assert.Equal(t, NotifyError, k)
	}
}

func TestDispatcherOptimisticRollsBackOnFailure(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	st.Load([]testRecord{{ID: "f1", Title: "asli"}})
	remote := &fakeRemote{fail: errRemoteDown}
	d := NewDispatcher(st, s, remote, true, &recordingNotifier{})

	_, err := d.Create(context.Background(), testRecord{Title: "baru"})
	assert.ErrorIs(t, err, errRemoteDown)
	assert.Equal(t, 1, st.Len())

	_, err = d.Update(context.Background(), "f1", testRecord{Title: "diubah"})
	assert.ErrorIs(t, err, errRemoteDown)
	got, _ := st.Find("f1")
	assert.Equal(t, "asli", got.Title)

	err = d.Delete(context.Background(), "f1", true)
	assert.ErrorIs(t, err, errRemoteDown)
	_, found := st.Find("f1")
	assert.True(t, found)
}

func TestDispatcherOptimisticAppliesThenConfirms(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	remote := &fakeRemote{}
	d := NewDispatcher(st, s, remote, true, &recordingNotifier{})

	saved, err := d.Create(context.Background(), testRecord{Title: "a", Body: validBody()})
	require.NoError(t, err)
	require.Len(t, remote.created, 1)
	_, found := st.Find(saved.ID)
	assert.True(t, found)
}

func TestDispatcherUpdateMissingRecord(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	n := &recordingNotifier{}
	d := NewDispatcher(st, s, nil, false, n)

	_, err := d.Update(context.Background(), "ghost", testRecord{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	// disurface sebagai pesan, bukan fatal
	require.Len(t, n.kinds, 1)
	assert.Equal(t, NotifyError, n.kinds[0])
}

func TestDispatcherDeleteConfirmationGate(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	st.Load([]testRecord{{ID: "f1"}})
	remote := &fakeRemote{}
	n := &recordingNotifier{}
	d := NewDispatcher(st, s, remote, false, n)

	// batal konfirmasi → no-op, bukan error, store & remote tak tersentuh
	require.NoError(t, d.Delete(context.Background(), "f1", false))
	assert.Equal(t, 1, st.Len())
	assert.Empty(t, remote.deleted)
	assert.Empty(t, n.kinds)

	require.NoError(t, d.Delete(context.Background(), "f1", true))
	assert.Equal(t, 0, st.Len())
	assert.Equal(t, []string{"f1"}, remote.deleted)
}

func TestDispatcherNotifiesEveryMutationOutcome(t *testing.T) {
	s := testSchema()
	st := NewStore(s)
	n := &recordingNotifier{}
	d := NewDispatcher(st, s, nil, false, n)

	saved, err := d.Create(context.Background(), testRecord{Title: "a", Body: validBody()})
	require.NoError(t, err)
	_, err = d.Update(context.Background(), saved.ID, testRecord{Title: "b", Body: validBody()})
	require.NoError(t, err)
	require.NoError(t, d.Delete(context.Background(), saved.ID, true))

	assert.Equal(t, []NotifyKind{NotifySuccess, NotifySuccess, NotifySuccess}, n.kinds)
}
