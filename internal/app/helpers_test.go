package app

import "go.uber.org/fx"

type lifecycleRecorder struct {
	hooks []fx.Hook
}

func (r *lifecycleRecorder) Append(h fx.Hook) {
	r.hooks = append(r.hooks, h)
}

type shutdownerStub struct {
	called chan struct{}
}

func (s *shutdownerStub) Shutdown(...fx.ShutdownOption) error {
	select {
	case s.called <- struct{}{}:
	default:
	}
	return nil
}
