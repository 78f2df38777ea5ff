// Package grove is a small component-based 2D scene framework for
// [Ebitengine].
//
// A [Scene] owns a [World] of [GameObject]s. Each object carries an ordered
// list of components: a [Transform] for placement, one or more [Renderer]s
// that produce an image, and optional [Collider]s. Every frame the scene
// asks each renderer for its image and world-space [Rect], culls the ones
// outside the visible area, and blits the rest onto the screen.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	gfx := grove.NewEbitenGraphics()
//	scene := grove.NewScene("Test", gfx, grove.ColorWhite)
//
//	obj := scene.NewObject("TestObj")
//	t := grove.AddComponent(obj, grove.NewTransform())
//	t.Pos = grove.Vec(4, 4)
//	grove.AddComponent(obj, grove.NewSolidColorRenderer(gfx, grove.NewColor(1, 1, 0), 32, 32))
//
//	grove.Run(scene, grove.RunConfig{Title: "My Game", Width: 640, Height: 640})
//
// For full control, implement [ebiten.Game] yourself, wrap the screen with
// [WrapEbiten] and call [Scene.Update] and [Scene.Draw] directly.
//
// # Coordinates
//
// Positions and sizes are in world units. [Scene.Draw] maps a world-space
// screen rect onto the whole screen; [DefaultScreenRect] is (0, 0)–(10, 10).
// A Transform with scale (1, 1) covers one world unit whatever the source
// image resolution. Transform rotation is in degrees, counter-clockwise.
//
// # Render caching
//
// [TransformedImageRenderer] embeds a [CachedRenderer] keyed on the owner's
// transform rounded to two decimals. Scaling and rotation run once per
// distinct key; moving an object by less than 0.005 units reuses the
// cached image. Replacing the source via SetImage clears the cache.
//
// # Loading
//
// [Loader] resolves image names against an [io/fs.FS], trying the name as
// given and then with each suffix, and falls back to a default image. Small
// images are upscaled so that later scaling to screen size stays smooth.
// Scenes can also be described in YAML and built with [LoadSceneConfig].
//
// # Logging
//
// grove logs through [log/slog] and is silent by default. Install a logger
// with [SetLogger]; debug mode ([Scene.SetDebugMode]) reports per-frame
// stats and skipped renderers at debug level.
//
// ECS integration lives in grove/ecs, which forwards collisions to a
// [Donburi] world as events.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package grove
