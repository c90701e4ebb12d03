package usecase

import (
	"github.com/tazomatalax/lab-calculator/internal/ports"
)

type InitConfig struct {
	initializer ports.ConfigInitializer
}

func NewInitConfig(initializer ports.ConfigInitializer) *InitConfig {
	return &InitConfig{initializer: initializer}
}

func (uc *InitConfig) Execute(root string, force bool) error {
	return uc.initializer.Init(root, force)
}
