package app

import (
	"resolve-robotics-uri/internal/adapters"
	"resolve-robotics-uri/internal/ports"
)

type Service struct {
	Env     ports.EnvPort
	FS      ports.FilesystemPort
	Profile ports.ProfilePort
}

func NewService() Service {
	return Service{
		Env:     adapters.NewOSEnvAdapter(),
		FS:      adapters.NewOSFilesystemAdapter(),
		Profile: adapters.NewProfileFileAdapter(),
	}
}
