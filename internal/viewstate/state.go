package viewstate

import "github.com/ailabs-id/kasir-dashboard/internal/domain/service"

// State is the user-controlled part of a services page view: active tab,
// search text, explicit status filters, and which ticket's detail modal
// is open. Values are immutable; every reducer returns a new State and
// never touches its receiver, so a data reload can never reset what the
// user was doing.
type State struct {
	Tab            service.Tab
	Search         string
	Statuses       []service.Status
	ModalServiceID string
}

func Initial() State {
	return State{Tab: service.TabActive}
}

// WithTab switches tabs and clears any explicit status filters, which
// only make sense within the tab they were picked on.
func (s State) WithTab(tab service.Tab) State {
	s.Statuses = nil
	s.Tab = tab
	return s
}

func (s State) WithSearch(query string) State {
	s.Search = query
	return s
}

// ToggleStatus adds the status to the explicit filter set, or removes it
// if already present.
func (s State) ToggleStatus(st service.Status) State {
	next := make([]service.Status, 0, len(s.Statuses)+1)
	found := false
	for _, existing := range s.Statuses {
		if existing == st {
			found = true
			continue
		}
		next = append(next, existing)
	}
	if !found {
		next = append(next, st)
	}
	s.Statuses = next
	return s
}

func (s State) OpenModal(serviceID string) State {
	s.ModalServiceID = serviceID
	return s
}

func (s State) CloseModal() State {
	s.ModalServiceID = ""
	return s
}

// Criteria maps the view state onto the filter pipeline's input.
func (s State) Criteria() service.Criteria {
	statuses := make([]service.Status, len(s.Statuses))
	copy(statuses, s.Statuses)
	return service.Criteria{
		Tab:      s.Tab,
		Statuses: statuses,
		Search:   s.Search,
	}
}
