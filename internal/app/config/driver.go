package config

type (
	DriverConfig struct {
		Logger Logger
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
