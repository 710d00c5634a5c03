// ABOUTME: Entry point for the linx player CLI
// ABOUTME: Streams a packet file or MP3 through the playback engine
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hajimehoshi/go-mp3"
	"github.com/linx-audio/linx-go/internal/ui"
	"github.com/linx-audio/linx-go/internal/version"
	"github.com/linx-audio/linx-go/pkg/audio/decode"
	"github.com/linx-audio/linx-go/pkg/audio/output"
	"github.com/linx-audio/linx-go/pkg/player"
)

var (
	input      = flag.String("input", "", "Input file: .mp3 or length-prefixed Opus packets (.opus-pkt)")
	configFile = flag.String("config", "", "JSON player configuration (overrides format flags)")
	sampleRate = flag.Int("sample-rate", 16000, "PCM sample rate in Hz")
	channels   = flag.Int("channels", 1, "Channel count")
	frameSize  = flag.Int("frame-size", 320, "Samples per channel per frame")
	bufferSize = flag.Int("buffer", player.DefaultBufferCapacity, "Ring buffer capacity in bytes")
	sinkName   = flag.String("sink", "oto", "Audio sink: oto, portaudio or stub")
	logFile    = flag.String("log-file", "linx-player.log", "Log file path")
	noTUI      = flag.Bool("no-tui", false, "Disable TUI, use streaming logs instead")
)

func main() {
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: linx-play -input <file.mp3|file.opus-pkt> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	useTUI := !*noTUI

	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		log.SetOutput(f)
	} else {
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	}

	log.Printf("Starting %s v%s", version.Product, version.Version)

	cfg := player.Config{
		SampleRate:     *sampleRate,
		Channels:       *channels,
		FrameSize:      *frameSize,
		BufferCapacity: *bufferSize,
	}
	if *configFile != "" {
		data, err := os.ReadFile(*configFile)
		if err != nil {
			log.Fatalf("Failed to read config: %v", err)
		}
		cfg, err = player.ParseConfig(data)
		if err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
	}

	if err := run(cfg, useTUI); err != nil {
		log.Fatalf("Playback failed: %v", err)
	}
}

func run(cfg player.Config, useTUI bool) error {
	isMP3 := strings.EqualFold(filepath.Ext(*input), ".mp3")

	file, err := os.Open(*input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	var dec decode.Decoder
	var packets <-chan []byte

	if isMP3 {
		mp3Dec, err := mp3.NewDecoder(file)
		if err != nil {
			return fmt.Errorf("open mp3: %w", err)
		}

		// go-mp3 always produces 16-bit stereo at the file's rate
		cfg.SampleRate = mp3Dec.SampleRate()
		cfg.Channels = 2
		dec = decode.NewPCM()
		packets = mp3Packets(mp3Dec, cfg.FrameSize*cfg.Channels*2)
	} else {
		opusDec, err := decode.NewOpus(cfg.SampleRate, cfg.Channels)
		if err != nil {
			return fmt.Errorf("create opus decoder: %w", err)
		}
		defer opusDec.Close()
		dec = opusDec
		packets = opusPackets(file)
	}

	var sink output.Sink
	switch *sinkName {
	case "oto":
		sink = output.NewOto()
	case "portaudio":
		sink = output.NewPortAudio()
	case "stub":
		stub := output.NewStub()
		stub.Realtime = true
		sink = stub
	default:
		return fmt.Errorf("unknown sink %q", *sinkName)
	}

	p, err := player.New(sink, dec)
	if err != nil {
		return err
	}
	defer p.Close()

	p.SetEventHook(func(old, new player.State) {
		log.Printf("Playback state: %v -> %v", old, new)
	})

	if err := p.Init(cfg); err != nil {
		return fmt.Errorf("init player: %w", err)
	}
	if err := p.Start(); err != nil {
		return fmt.Errorf("start player: %w", err)
	}

	var tuiProg *tea.Program
	control := ui.NewControl()
	if useTUI {
		tuiProg, err = ui.Run(control)
		if err != nil {
			return fmt.Errorf("start TUI: %w", err)
		}
		go func() { _, _ = tuiProg.Run() }()

		statusDone := make(chan struct{})
		defer close(statusDone)
		go pushStatus(tuiProg, p, cfg, statusDone)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := feed(p, packets)

	for {
		select {
		case <-done:
			// Drain what the producer queued, then finish
			for !p.BufferEmpty() || !p.Drained() {
				if p.State() == player.StateError {
					break
				}
				time.Sleep(20 * time.Millisecond)
			}
			stats := p.Stats()
			log.Printf("Playback complete: %d frames, %d bytes, %d decode errors",
				stats.TotalFrames, stats.TotalBytes, stats.DecodeErrors)
			if tuiProg != nil {
				tuiProg.Quit()
			}
			return p.Stop()

		case <-sigCh:
			log.Printf("Interrupted, stopping")
			if tuiProg != nil {
				tuiProg.Quit()
			}
			return p.Stop()

		case <-control.Quit:
			log.Printf("Quit requested, stopping")
			return p.Stop()

		case <-control.Toggle:
			switch p.State() {
			case player.StatePlaying:
				if err := p.Pause(); err != nil {
					log.Printf("Pause failed: %v", err)
				}
			case player.StatePaused:
				if err := p.Resume(); err != nil {
					log.Printf("Resume failed: %v", err)
				}
			}
		}
	}
}

// feed pumps packets into the player, backing off when the ring is full.
func feed(p *player.Player, packets <-chan []byte) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		for pkt := range packets {
			for {
				err := p.Feed(pkt)
				if err == nil {
					break
				}
				if errors.Is(err, player.ErrBufferFull) {
					time.Sleep(10 * time.Millisecond)
					continue
				}
				log.Printf("Feed failed: %v", err)
				return
			}
		}
	}()

	return done
}

// pushStatus streams player snapshots into the TUI until done closes.
func pushStatus(prog *tea.Program, p *player.Player, cfg player.Config, done <-chan struct{}) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			stats := p.Stats()
			prog.Send(ui.StatusMsg{
				State:        p.State().String(),
				SampleRate:   cfg.SampleRate,
				Channels:     cfg.Channels,
				BufferUsage:  p.BufferUsage(),
				TotalBytes:   stats.TotalBytes,
				TotalFrames:  stats.TotalFrames,
				DecodeErrors: stats.DecodeErrors,
				Source:       filepath.Base(*input),
			})
		}
	}
}

// opusPackets reads length-prefixed Opus packets: a big-endian uint16
// length followed by the payload, repeated until EOF.
func opusPackets(r io.Reader) <-chan []byte {
	out := make(chan []byte, 16)

	go func() {
		defer close(out)
		for {
			var length uint16
			if err := binary.Read(r, binary.BigEndian, &length); err != nil {
				if err != io.EOF {
					log.Printf("Packet read failed: %v", err)
				}
				return
			}
			if length == 0 {
				continue
			}

			pkt := make([]byte, length)
			if _, err := io.ReadFull(r, pkt); err != nil {
				log.Printf("Truncated packet: %v", err)
				return
			}
			out <- pkt
		}
	}()

	return out
}

// mp3Packets chunks decoded MP3 PCM into fixed-size packets.
func mp3Packets(dec *mp3.Decoder, packetBytes int) <-chan []byte {
	out := make(chan []byte, 16)

	go func() {
		defer close(out)
		for {
			pkt := make([]byte, packetBytes)
			n, err := io.ReadFull(dec, pkt)
			if n > 0 {
				// PCM packets need whole samples
				out <- pkt[:n-n%2]
			}
			if err != nil {
				if err != io.EOF && err != io.ErrUnexpectedEOF {
					log.Printf("MP3 decode failed: %v", err)
				}
				return
			}
		}
	}()

	return out
}
