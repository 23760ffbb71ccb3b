package domain

// Schedule - рабочее состояние расписания целиком, как его видит UI.
type Schedule struct {
	Teams       []Team
	Resources   []Resource
	Assignments []Assignment
}

// ChangeSummary - минимальный дифф между рабочим состоянием и последним
// синхронизированным снимком. Удаленные сущности материализованы из снимка,
// потому что в рабочем состоянии их уже нет.
type ChangeSummary struct {
	CreatedAssignments []Assignment
	UpdatedAssignments []Assignment
	DeletedAssignments []Assignment
	CreatedTeams       []Team
	UpdatedTeams       []Team
	DeletedTeams       []Team
}

// IsEmpty сообщает, что синхронизировать нечего.
func (c *ChangeSummary) IsEmpty() bool {
	return len(c.CreatedAssignments) == 0 &&
		len(c.UpdatedAssignments) == 0 &&
		len(c.DeletedAssignments) == 0 &&
		len(c.CreatedTeams) == 0 &&
		len(c.UpdatedTeams) == 0 &&
		len(c.DeletedTeams) == 0
}
