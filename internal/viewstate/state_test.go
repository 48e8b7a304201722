package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ailabs-id/kasir-dashboard/internal/domain/service"
)

func TestState(t *testing.T) {
	t.Run("initial state opens on the active tab", func(t *testing.T) {
		s := Initial()
		assert.Equal(t, service.TabActive, s.Tab)
		assert.Empty(t, s.Statuses)
		assert.Empty(t, s.ModalServiceID)
	})

	t.Run("reducers never mutate their receiver", func(t *testing.T) {
		s := Initial().ToggleStatus(service.StatusQueue)

		_ = s.WithTab(service.TabHistory)
		_ = s.WithSearch("toner")
		_ = s.ToggleStatus(service.StatusPaid)
		_ = s.OpenModal("SVC-1")

		assert.Equal(t, service.TabActive, s.Tab)
		assert.Equal(t, "", s.Search)
		assert.Equal(t, []service.Status{service.StatusQueue}, s.Statuses)
		assert.Equal(t, "", s.ModalServiceID)
	})

	t.Run("switching tab clears explicit statuses", func(t *testing.T) {
		s := Initial().
			ToggleStatus(service.StatusQueue).
			WithTab(service.TabHistory)
		assert.Empty(t, s.Statuses)
		assert.Equal(t, service.TabHistory, s.Tab)
	})

	t.Run("toggle adds then removes", func(t *testing.T) {
		s := Initial().ToggleStatus(service.StatusDebts)
		assert.Equal(t, []service.Status{service.StatusDebts}, s.Statuses)

		s = s.ToggleStatus(service.StatusDebts)
		assert.Empty(t, s.Statuses)
	})

	t.Run("modal survives other reducers", func(t *testing.T) {
		s := Initial().
			OpenModal("SVC-9").
			WithSearch("alice").
			ToggleStatus(service.StatusQueue)
		assert.Equal(t, "SVC-9", s.ModalServiceID)

		s = s.CloseModal()
		assert.Equal(t, "", s.ModalServiceID)
	})

	t.Run("criteria copies the status slice", func(t *testing.T) {
		s := Initial().ToggleStatus(service.StatusQueue)
		cr := s.Criteria()
		cr.Statuses[0] = service.StatusPaid
		assert.Equal(t, []service.Status{service.StatusQueue}, s.Statuses)
	})
}
