package configfile

//go:generate mockgen -source=store.go -destination=internal/mock/store_mock.go -package=mock

// Store receives loaded configurations from [LoadAndRegister] and
// [LoadAndRegisterWith]. It abstracts the host application's resource table
// (a dependency-injection container, an ECS resource store, or the registry
// package's Registry for applications without one).
type Store interface {
	// Put registers value under name, replacing any previous entry for the
	// same name. name is the configuration type's simple name as returned by
	// [TypeName].
	Put(name string, value any) error
}
