package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, sound effects and fonts,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Files are read from the embedded assets when the embedded package has been
// initialized, and from the working directory otherwise (tools and tests).
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All resources are loaded on the
// main goroutine before the first frame.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := rm.LoadResourceGroup("match"); err != nil {
//	    log.Fatal(err)
//	}
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	audioCache    map[string]*audio.Player    // Cache for loaded sound players: path -> Player
	audioContext  *audio.Context              // Global audio context, nil disables sound loading
	fontFaceCache map[string]*text.GoTextFace // Cache for Ebitengine v2 text faces

	config *config.ResourceConfig // Parsed YAML configuration
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context used for decoding sound effects.
//     May be nil, in which case LoadSoundEffect returns an error.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// readAsset reads a file from the embedded assets, falling back to the OS file system.
func readAsset(path string) ([]byte, error) {
	if embedded.IsInitialized() {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: The file path to the image resource (e.g., "assets/images/ball.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := readAsset(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSoundEffect loads a non-looping sound effect and caches its player.
// Supported formats: WAV, OGG and MP3, chosen by file extension.
//
// Parameters:
//   - path: The file path to the sound resource (e.g., "assets/sounds/smash.wav").
//
// Returns:
//   - A pointer to the audio player, rewound and ready to play.
//   - An error if no audio context is available or the file cannot be decoded.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for sound effect %s", path)
	}

	audioData, err := readAsset(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}

	stream, err := decodeSound(path, bytes.NewReader(audioData))
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// decodeSound decodes an in-memory sound file according to its extension.
func decodeSound(path string, reader io.ReadSeeker) (io.ReadSeeker, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".wav":
		stream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3)", ext)
	}
}

// GetAudioPlayer retrieves a previously loaded sound player from the cache.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadFontFromBytes creates a text face from raw TrueType data and caches it by name and size.
// The game uses the Go fonts bundled with golang.org/x/image, so no font file ships with the assets.
//
// Parameters:
//   - name: Cache key for the font (e.g., "goregular").
//   - data: TrueType font data.
//   - size: Font size in pixels.
func (rm *ResourceManager) LoadFontFromBytes(name string, data []byte, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face

	return face, nil
}

// LoadResourceConfig loads and validates the YAML resource configuration.
//
// Parameters:
//   - configPath: Path to the configuration (e.g., "assets/config/resources.yaml")
//
// Returns:
//   - An error if the file cannot be read, parsed or fails validation
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := readAsset(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	cfg, err := config.ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("resource config %s: %w", configPath, err)
	}

	rm.config = cfg
	return nil
}

// Config returns the loaded resource configuration, or nil before LoadResourceConfig.
func (rm *ResourceManager) Config() *config.ResourceConfig {
	return rm.config
}

// LoadImageByID loads an image resource using its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	path, exists := rm.config.ImagePath(resourceID)
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	return rm.LoadImage(path)
}

// GetImageByID retrieves a previously loaded image using its resource ID.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	if rm.config == nil {
		return nil
	}

	path, exists := rm.config.ImagePath(resourceID)
	if !exists {
		return nil
	}

	return rm.GetImage(path)
}

// GetSoundByID retrieves a previously loaded sound player using its resource ID.
func (rm *ResourceManager) GetSoundByID(resourceID string) *audio.Player {
	if rm.config == nil {
		return nil
	}

	path, exists := rm.config.SoundPaths()[resourceID]
	if !exists {
		return nil
	}

	return rm.GetAudioPlayer(path)
}

// LoadResourceGroup loads all resources in a specified group.
// Sounds are skipped when there is no audio context.
//
// Parameters:
//   - groupName: The name of the resource group (e.g., "match")
//
// Returns:
//   - An error if the group is not found or any resource fails to load
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	if rm.audioContext == nil {
		return nil
	}

	soundPaths := rm.config.SoundPaths()
	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundEffect(soundPaths[sound.ID]); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}

	return nil
}

// TextureSize returns the pixel size of a loaded image resource.
// It satisfies config.TextureSizeFunc.
func (rm *ResourceManager) TextureSize(imageID string) (width, height int, err error) {
	img := rm.GetImageByID(imageID)
	if img == nil {
		return 0, 0, fmt.Errorf("image %s not loaded", imageID)
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

// LoadClips builds the cat and ball animation clips from the loaded images.
// The images referenced by the clips must already be loaded (see LoadResourceGroup).
func (rm *ResourceManager) LoadClips() (*components.ClipSet, *components.Animation, error) {
	if rm.config == nil {
		return nil, nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	return config.BuildClips(rm.config, rm.TextureSize)
}
