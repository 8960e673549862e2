// Package audio synthesizes the chime and brown-noise WAV assets on first
// use and plays them through whichever command-line player the host has.
// Playback is best effort and gated on the audio_enabled setting.
package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/julianstephens/dailydash/internal/logger"
)

const (
	sampleRate   = 44100
	chimeFile    = "chime.wav"
	noiseFile    = "brown_noise.wav"
	noiseSeconds = 300
)

// players in preference order; the first one on PATH wins.
var players = []string{"paplay", "aplay", "afplay"}

// Manager owns the generated assets and the noise playback process.
type Manager struct {
	mu       sync.Mutex
	assetDir string
	enabled  func() bool
	player   string
	noiseCmd *exec.Cmd
}

// NewManager prepares assets under configDir/assets. enabled is consulted on
// every playback request so the settings toggle applies immediately.
func NewManager(configDir string, enabled func() bool) *Manager {
	m := &Manager{
		assetDir: filepath.Join(configDir, "assets"),
		enabled:  enabled,
	}
	for _, p := range players {
		if _, err := exec.LookPath(p); err == nil {
			m.player = p
			break
		}
	}
	if m.player == "" {
		logger.Info("no audio player found, sound disabled")
	}
	return m
}

// PlayChime plays the completion chime asynchronously.
func (m *Manager) PlayChime() {
	if !m.enabled() || m.player == "" {
		return
	}
	path, err := m.ensureChime()
	if err != nil {
		logger.Warn("failed to prepare chime asset", "error", err)
		return
	}
	if err := exec.Command(m.player, path).Start(); err != nil {
		logger.Debug("chime playback failed", "error", err)
	}
}

// ToggleNoise starts or stops the brown-noise loop and reports whether it is
// now playing.
func (m *Manager) ToggleNoise() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.noiseCmd != nil {
		if m.noiseCmd.Process != nil {
			m.noiseCmd.Process.Kill()
		}
		m.noiseCmd = nil
		return false
	}

	if !m.enabled() || m.player == "" {
		return false
	}
	path, err := m.ensureNoise()
	if err != nil {
		logger.Warn("failed to prepare noise asset", "error", err)
		return false
	}

	cmd := exec.Command(m.player, path)
	if err := cmd.Start(); err != nil {
		logger.Debug("noise playback failed", "error", err)
		return false
	}
	m.noiseCmd = cmd
	go cmd.Wait()
	return true
}

// NoisePlaying reports whether the noise loop is active.
func (m *Manager) NoisePlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.noiseCmd != nil
}

func (m *Manager) ensureChime() (string, error) {
	return m.ensureAsset(chimeFile, chimeSamples)
}

func (m *Manager) ensureNoise() (string, error) {
	return m.ensureAsset(noiseFile, noiseSamples)
}

func (m *Manager) ensureAsset(name string, gen func() []int16) (string, error) {
	path := filepath.Join(m.assetDir, name)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(m.assetDir, 0755); err != nil {
		return "", err
	}
	if err := writeWAV(path, gen()); err != nil {
		return "", err
	}
	return path, nil
}

// chimeSamples is a short 880Hz tone with an exponential decay.
func chimeSamples() []int16 {
	n := sampleRate // one second
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / sampleRate
		amp := math.Exp(-4*t) * 0.6
		samples[i] = int16(amp * math.Sin(2*math.Pi*880*t) * math.MaxInt16)
	}
	return samples
}

// noiseSamples is a bounded random walk, which reads as brown noise.
func noiseSamples() []int16 {
	samples := make([]int16, sampleRate*noiseSeconds)
	level := 0.0
	for i := range samples {
		level += (rand.Float64()*2 - 1) * 0.02
		if level > 0.5 {
			level = 0.5
		} else if level < -0.5 {
			level = -0.5
		}
		samples[i] = int16(level * math.MaxInt16)
	}
	return samples
}

// writeWAV emits a 16-bit mono PCM file.
func writeWAV(path string, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dataLen := uint32(len(samples) * 2)
	// RIFF header
	f.WriteString("RIFF")
	binary.Write(f, binary.LittleEndian, uint32(36+dataLen))
	f.WriteString("WAVE")
	// fmt chunk
	f.WriteString("fmt ")
	binary.Write(f, binary.LittleEndian, uint32(16))
	binary.Write(f, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(f, binary.LittleEndian, uint16(1)) // mono
	binary.Write(f, binary.LittleEndian, uint32(sampleRate))
	binary.Write(f, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(f, binary.LittleEndian, uint16(2))            // block align
	binary.Write(f, binary.LittleEndian, uint16(16))           // bits per sample
	// data chunk
	f.WriteString("data")
	binary.Write(f, binary.LittleEndian, dataLen)
	if err := binary.Write(f, binary.LittleEndian, samples); err != nil {
		return err
	}
	return f.Close()
}
