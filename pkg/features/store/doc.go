// Package store provides reducer-driven state containers.
//
// A Store holds a state value and a pure Reducer. Dispatch runs the reducer;
// when it reports a change, the new state is stored and every subscriber is
// notified exactly once. Subscribers pull the new state with State:
//
//	s := store.New(0, func(n int, delta int) (int, bool) {
//	    if delta == 0 {
//	        return n, false
//	    }
//	    return n + delta, true
//	})
//	stop := s.Subscribe(func() { fmt.Println("count:", s.State()) })
//	defer stop()
//	s.Dispatch(1)
//
// Dispatches issued while subscribers are being notified are queued and
// applied in order before the outermost Dispatch returns.
//
// Middleware wraps every transition and is the place for logging, metrics
// and tracing; the reducer itself stays free of side effects:
//
//	s.Use(middleware.Logging[int](logger), middleware.Prometheus[int]())
//
// Inside an owner's render pass, Use keeps one store per hook slot and
// disposes it with the owner.
package store
