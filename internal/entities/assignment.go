package entities

// Assignment итог выбора исполнителя: победившая заявка, назначенный тур
// и отклоненные конкуренты.
type Assignment struct {
	Application Application
	Tour        Tour
	Rejected    []Application
}
