// Package loader provides the feature loading system.
//
// Each feature implements Feature: a name, an enabled switch and a Load hook
// that registers its routes. The Manager keeps features in registration order
// and LoadAll loads the enabled ones, so results, auth, health and archive
// can be developed and tested in isolation.
//
//	mgr := loader.NewManager()
//	mgr.Register(results.NewFeature(...))
//	names, err := mgr.LoadAll(app)
package loader
