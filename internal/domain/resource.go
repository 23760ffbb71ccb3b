package domain

// Resource - сотрудник, которого можно назначить в команду.
// Справочные данные, поставляются внешней системой и внутри ядра не изменяются.
type Resource struct {
	ID   string
	Name string
	Role string
}
