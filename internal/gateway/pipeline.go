package gateway

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"
)

// Pipeline wires together the two UDP endpoints, the encoder/decoder
// translation tasks, and the command/stats buses per spec.md §4.D's
// topology table.
type Pipeline struct {
	Config Config
	Stats  *StatsBus
	Cmds   *CommandBus

	disEndpoint  *Endpoint
	cdisEndpoint *Endpoint

	encoder *Encoder
	decoder *Decoder

	shutdown *Shutdown

	wg       sync.WaitGroup
	quitOnce sync.Once
}

// NewPipeline opens both UDP endpoints and constructs the translation tasks.
// It does not start any goroutines; call Start for that.
func NewPipeline(cfg Config) (*Pipeline, error) {
	disEP, err := OpenEndpoint("dis", cfg.DIS)
	if err != nil {
		return nil, err
	}
	cdisEP, err := OpenEndpoint("cdis", cfg.CDIS)
	if err != nil {
		disEP.Close()
		return nil, err
	}

	stats := NewStatsBus()
	return &Pipeline{
		Config:       cfg,
		Stats:        stats,
		Cmds:         NewCommandBus(),
		disEndpoint:  disEP,
		cdisEndpoint: cdisEP,
		encoder:      NewEncoder(cfg.UnknownPolicy, stats),
		decoder:      NewDecoder(stats),
		shutdown:     NewShutdown(cfg.ShutdownTimeout),
	}, nil
}

func resolveDest(cfg SocketConfig) (*net.UDPAddr, error) {
	addr := cfg.RemoteAddress
	port := cfg.RemotePort
	if port == 0 {
		port = cfg.Port
	}
	if addr == "" {
		if cfg.MulticastGroup != "" {
			addr = cfg.MulticastGroup
		} else {
			addr = "255.255.255.255"
		}
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		return nil, fmt.Errorf("gateway: invalid remote address %q", addr)
	}
	return &net.UDPAddr{IP: ip, Port: port}, nil
}

// Start launches every pipeline task and blocks until ctx is canceled or a
// Quit command arrives, at which point it runs the two-phase shutdown and
// returns once every task has stopped.
func (p *Pipeline) Start(ctx context.Context) error {
	disToEncoder := make(chan []byte, p.Config.ChannelCapacity)
	encoderToCdis := make(chan []byte, p.Config.ChannelCapacity)
	cdisToDecoder := make(chan []byte, p.Config.ChannelCapacity)
	decoderToDis := make(chan []byte, p.Config.ChannelCapacity)

	cdisDest, err := resolveDest(p.Config.CDIS)
	if err != nil {
		return err
	}
	disDest, err := resolveDest(p.Config.DIS)
	if err != nil {
		return err
	}

	readCtx, cancelReads := context.WithCancel(ctx)
	allCtx, cancelAll := context.WithCancel(ctx)
	defer cancelReads()
	defer cancelAll()

	cmdSub := p.Cmds.Subscribe()
	defer p.Cmds.Unsubscribe(cmdSub)

	p.run(func() error { return p.disEndpoint.ReadLoop(readCtx, EdgeDISSocket, disToEncoder) })
	p.runFatal(func() error {
		return RunSupervised(allCtx, "encoder", func(c context.Context) error {
			return p.encoder.Run(c, disToEncoder, encoderToCdis)
		})
	})
	p.run(func() error { return p.cdisEndpoint.WriteLoop(allCtx, encoderToCdis, cdisDest) })

	p.run(func() error { return p.cdisEndpoint.ReadLoop(readCtx, EdgeCDISSocket, cdisToDecoder) })
	p.runFatal(func() error {
		return RunSupervised(allCtx, "decoder", func(c context.Context) error {
			return p.decoder.Run(c, cdisToDecoder, decoderToDis)
		})
	})
	p.run(func() error { return p.disEndpoint.WriteLoop(allCtx, decoderToDis, disDest) })

	p.shutdown.WaitForSignal(ctx, cmdSub)
	log.Println("gateway: shutting down")
	p.disEndpoint.Close()
	p.cdisEndpoint.Close()
	p.shutdown.Run(cancelReads, cancelAll)

	p.wg.Wait()
	return nil
}

func (p *Pipeline) run(fn func() error) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := fn(); err != nil {
			log.Printf("gateway: task exited with error: %v", err)
		}
	}()
}

// runFatal wraps a supervised translation task (RunSupervised over the
// encoder or decoder): a non-nil return means the task exhausted its
// restart backoff ladder, a permanent failure under spec.md §7's fault
// model. The whole gateway initiates shutdown rather than continuing with
// that edge dead. quitOnce keeps a simultaneous encoder+decoder failure from
// publishing Quit twice to a subscriber that only drains it once.
func (p *Pipeline) runFatal(fn func() error) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := fn(); err != nil {
			log.Printf("gateway: task exited with unrecoverable error: %v, shutting down", err)
			p.quitOnce.Do(func() { p.Cmds.Publish(Quit) })
		}
	}()
}
