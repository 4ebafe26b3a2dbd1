package services

// ActionService serves the catalog of warmup actions a task can perform.
// The catalog is fixed and held by the service instance, not by package
// state; one instance is constructed at startup and shared via injection.
type ActionService struct {
	actions []string
}

func NewActionService() *ActionService {
	return &ActionService{
		actions: []string{
			"Transfer from Spam to Inbox",
			"Click Link in Email",
			"Mark as Important",
			"Reply to Email",
			"Forward Email",
			"Delete Email",
			"Archive Email",
			"Star Email",
			"Move to Folder",
			"Tag Email",
			"Add to Contact List",
		},
	}
}

// GetAvailableActions returns the full action catalog
func (s *ActionService) GetAvailableActions() []string {
	return s.actions
}

// GetActionByIndex returns the action at the given catalog position
func (s *ActionService) GetActionByIndex(index int) (string, bool) {
	if index < 0 || index >= len(s.actions) {
		return "", false
	}
	return s.actions[index], true
}

// IsValidAction reports whether the given action is part of the catalog
func (s *ActionService) IsValidAction(action string) bool {
	for _, a := range s.actions {
		if a == action {
			return true
		}
	}
	return false
}
