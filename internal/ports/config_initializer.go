package ports

// ConfigInitializer scaffolds a default labcalc.yaml under root.
type ConfigInitializer interface {
	Init(root string, force bool) error
}
