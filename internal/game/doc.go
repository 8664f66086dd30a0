// Package game implements the quiz rules as a pure state machine.
//
// An Engine takes a Session and a Command and returns the next Session
// together with the Effects the caller has to carry out:
//
//	engine := game.NewEngine(3, nil)
//	session := game.NewSession(highScore)
//
//	session, effects := engine.Handle(session, game.StartGame{Artist: "Radiohead"})
//	// effects: [FetchAlbums{Artist: "Radiohead"}]
//
// The engine never performs I/O. Fetching albums, downloading covers,
// persisting the high score and timing out feedback are all effects, so the
// rules can be tested with a seeded random source and no network.
//
// # Flow
//
//	MENU -> LOADING -> PLAYING -> (correct | incorrect) -> PLAYING
//	                           \-> WON -> MENU
package game
