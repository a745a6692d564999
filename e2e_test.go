package vkdebug_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/vkdebug"
	"github.com/gogpu/vkdebug/driver/softdriver"
)

// recorder collects delivered messages by value, since retaining the
// pointed-to Message past the callback is the caller's copy to make.
type recorder struct {
	mu       sync.Mutex
	messages []vkdebug.Message
}

func (r *recorder) callback(msg *vkdebug.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *msg)
}

func (r *recorder) all() []vkdebug.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]vkdebug.Message(nil), r.messages...)
}

func newSoftInstance(t *testing.T) (*softdriver.Layer, *vkdebug.Instance) {
	t.Helper()
	layer := softdriver.New()
	in, err := vkdebug.NewInstance(0x1, layer.Table(), vkdebug.InstanceOptions{
		EXTDebugUtils: true,
	})
	require.NoError(t, err)
	return layer, in
}

func TestEndToEndValidationEvent(t *testing.T) {
	layer, in := newSoftInstance(t)

	var rec recorder
	m, err := vkdebug.Register(in, vkdebug.FilterAll(), rec.callback)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, in.SetObjectName(7, 0x42, "O"))

	delivered := layer.Raise(in.Handle(),
		uint32(vkdebug.SeverityError), uint32(vkdebug.TypeGeneral),
		softdriver.Event{
			IDName:  "X",
			Message: "Y",
			Objects: []softdriver.Object{{Type: 7, Handle: 0x42}},
		})
	assert.Equal(t, 1, delivered)

	msgs := rec.all()
	require.Len(t, msgs, 1)
	got := msgs[0]
	assert.Equal(t, vkdebug.SeverityError, got.Severity)
	assert.True(t, got.Types.Contains(vkdebug.TypeGeneral))
	assert.Equal(t, "X", got.IDName)
	assert.Equal(t, "Y", got.Description)
	require.Len(t, got.Objects, 1)
	assert.Equal(t, "O", got.Objects[0].Name)
	assert.Equal(t, uint64(0x42), got.Objects[0].Handle)
	assert.Equal(t, uint32(7), got.Objects[0].Type)
}

func TestFilterMasksApply(t *testing.T) {
	layer, in := newSoftInstance(t)

	var rec recorder
	m, err := vkdebug.Register(in, vkdebug.FilterErrorsAndWarnings(), rec.callback)
	require.NoError(t, err)
	defer m.Close()

	tests := []struct {
		name          string
		severity      vkdebug.MessageSeverity
		types         vkdebug.MessageType
		wantDelivered int
	}{
		{"info general filtered out", vkdebug.SeverityInfo, vkdebug.TypeGeneral, 0},
		{"verbose validation filtered out", vkdebug.SeverityVerbose, vkdebug.TypeValidation, 0},
		{"warning performance filtered out", vkdebug.SeverityWarning, vkdebug.TypePerformance, 0},
		{"warning validation delivered", vkdebug.SeverityWarning, vkdebug.TypeValidation, 1},
		{"error general delivered", vkdebug.SeverityError, vkdebug.TypeGeneral, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := layer.Raise(in.Handle(), uint32(tt.severity), uint32(tt.types), softdriver.Event{
				IDName:  "f",
				Message: "filter probe",
			})
			assert.Equal(t, tt.wantDelivered, n)
		})
	}
}

func TestManualSubmitBypassesFilter(t *testing.T) {
	layer, in := newSoftInstance(t)

	var rec recorder
	m, err := vkdebug.Register(in, vkdebug.FilterNone(), rec.callback)
	require.NoError(t, err)
	defer m.Close()

	// Organic path: masked off entirely.
	n := layer.Raise(in.Handle(), uint32(vkdebug.SeverityError), uint32(vkdebug.TypeGeneral),
		softdriver.Event{IDName: "organic", Message: "dropped"})
	assert.Zero(t, n)
	assert.Empty(t, rec.all())

	// Injection path: reaches the messenger anyway.
	require.NoError(t, m.Submit(&vkdebug.Message{
		Severity:    vkdebug.SeverityError,
		Types:       vkdebug.TypeGeneral,
		IDName:      "manual",
		Description: "injected",
	}))

	msgs := rec.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, "manual", msgs[0].IDName)
	assert.Equal(t, "injected", msgs[0].Description)
}

func TestLabelsAttachedInOrder(t *testing.T) {
	layer, in := newSoftInstance(t)

	var rec recorder
	m, err := vkdebug.Register(in, vkdebug.FilterAll(), rec.callback)
	require.NoError(t, err)
	defer m.Close()

	cb := in.CommandBuffer(0x10)
	cb.BeginLabel(vkdebug.Label{Name: "outer", Color: [4]float32{1, 0, 0, 1}})
	cb.BeginLabel(vkdebug.Label{Name: "inner", Color: [4]float32{0, 1, 0, 1}})
	cb.InsertLabel(vkdebug.Label{Name: "marker", Color: [4]float32{0, 0, 1, 1}})

	q := in.Queue(0x20)
	q.BeginLabel(vkdebug.Label{Name: "frame", Color: [4]float32{1, 1, 1, 1}})

	layer.Raise(in.Handle(), uint32(vkdebug.SeverityError), uint32(vkdebug.TypeValidation),
		softdriver.Event{
			IDName:        "labels",
			Message:       "with labels",
			Queue:         0x20,
			CommandBuffer: 0x10,
		})

	msgs := rec.all()
	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].CommandBufferLabels, 3)
	assert.Equal(t, "outer", msgs[0].CommandBufferLabels[0].Name)
	assert.Equal(t, "inner", msgs[0].CommandBufferLabels[1].Name)
	assert.Equal(t, "marker", msgs[0].CommandBufferLabels[2].Name)
	require.Len(t, msgs[0].QueueLabels, 1)
	assert.Equal(t, "frame", msgs[0].QueueLabels[0].Name)

	// Inserted labels are consumed; begun regions persist until ended.
	cb.EndLabel()
	layer.Raise(in.Handle(), uint32(vkdebug.SeverityError), uint32(vkdebug.TypeValidation),
		softdriver.Event{IDName: "labels", Message: "again", CommandBuffer: 0x10})

	msgs = rec.all()
	require.Len(t, msgs, 2)
	require.Len(t, msgs[1].CommandBufferLabels, 1)
	assert.Equal(t, "outer", msgs[1].CommandBufferLabels[0].Name)
}

func TestRaiseAfterCloseNotDelivered(t *testing.T) {
	layer, in := newSoftInstance(t)

	var rec recorder
	m, err := vkdebug.Register(in, vkdebug.FilterAll(), rec.callback)
	require.NoError(t, err)

	layer.Raise(in.Handle(), uint32(vkdebug.SeverityError), uint32(vkdebug.TypeGeneral),
		softdriver.Event{IDName: "one", Message: "before close"})
	require.Len(t, rec.all(), 1)

	m.Close()

	n := layer.Raise(in.Handle(), uint32(vkdebug.SeverityError), uint32(vkdebug.TypeGeneral),
		softdriver.Event{IDName: "two", Message: "after close"})
	assert.Zero(t, n)
	assert.Len(t, rec.all(), 1)
}

// A messenger whose callback always panics keeps the whole channel alive:
// delivery continues, the layer is never aborted, the test binary survives.
func TestPanickingCallbackEndToEnd(t *testing.T) {
	layer, in := newSoftInstance(t)

	calls := 0
	m, err := vkdebug.Register(in, vkdebug.FilterAll(), func(*vkdebug.Message) {
		calls++
		panic("always fails")
	})
	require.NoError(t, err)
	defer m.Close()

	for i := 0; i < 3; i++ {
		n := layer.Raise(in.Handle(), uint32(vkdebug.SeverityError), uint32(vkdebug.TypeGeneral),
			softdriver.Event{IDName: "boom", Message: "still alive"})
		assert.Equal(t, 1, n)
	}
	assert.Equal(t, 3, calls)
}

func TestMultipleMessengersDeliveryOrder(t *testing.T) {
	layer, in := newSoftInstance(t)

	var order []string
	var mu sync.Mutex
	mk := func(tag string) vkdebug.MessageCallback {
		return func(*vkdebug.Message) {
			mu.Lock()
			order = append(order, tag)
			mu.Unlock()
		}
	}

	m1, err := vkdebug.Register(in, vkdebug.FilterAll(), mk("first"))
	require.NoError(t, err)
	defer m1.Close()
	m2, err := vkdebug.Register(in, vkdebug.FilterAll(), mk("second"))
	require.NoError(t, err)
	defer m2.Close()

	n := layer.Raise(in.Handle(), uint32(vkdebug.SeverityError), uint32(vkdebug.TypeGeneral),
		softdriver.Event{IDName: "order", Message: "fan out"})
	assert.Equal(t, 2, n)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second"}, order)
}
