// Package settings defines the application settings record. The struct
// shapes here are what the menu layer binds and the codecs persist:
// nested sections, optional fields, sequences, and a fixed-size pair.
package settings

// Settings is the root record with hierarchical sections.
type Settings struct {
	General  GeneralSettings `toml:"general" yaml:"general" json:"general"`
	Audio    AudioSettings   `toml:"audio" yaml:"audio" json:"audio"`
	Network  NetworkSettings `toml:"network" yaml:"network" json:"network"`
	Profiles []Profile       `toml:"profiles" yaml:"profiles" json:"profiles"`
	Tags     []string        `toml:"tags" yaml:"tags" json:"tags"`
	Theme    *Theme          `toml:"theme,omitempty" yaml:"theme,omitempty" json:"theme,omitempty"`
}

// GeneralSettings holds the top-level application settings.
type GeneralSettings struct {
	Volume     uint32 `toml:"volume" yaml:"volume" json:"volume"`
	Fullscreen bool   `toml:"fullscreen" yaml:"fullscreen" json:"fullscreen"`
	MaxFPS     uint32 `toml:"max_fps" yaml:"max_fps" json:"max_fps"`
	Language   string `toml:"language" yaml:"language" json:"language"`
}

// AudioSettings holds the mixer settings.
type AudioSettings struct {
	MasterDB   float64    `toml:"master_db" yaml:"master_db" json:"master_db"`
	Muted      bool       `toml:"muted" yaml:"muted" json:"muted"`
	Balance    [2]float32 `toml:"balance" yaml:"balance" json:"balance"`
	SampleRate uint32     `toml:"sample_rate" yaml:"sample_rate" json:"sample_rate"`
}

// NetworkSettings holds connection settings.
type NetworkSettings struct {
	Host        string  `toml:"host" yaml:"host" json:"host"`
	Port        uint16  `toml:"port" yaml:"port" json:"port"`
	TimeoutSecs uint32  `toml:"timeout_secs" yaml:"timeout_secs" json:"timeout_secs"`
	Retries     int8    `toml:"retries" yaml:"retries" json:"retries"`
	ProxyURL    *string `toml:"proxy_url,omitempty" yaml:"proxy_url,omitempty" json:"proxy_url,omitempty"`
}

// Profile is one named preset in the profiles sequence.
type Profile struct {
	Name      string `toml:"name" yaml:"name" json:"name"`
	Rating    int16  `toml:"rating" yaml:"rating" json:"rating"`
	Preferred bool   `toml:"preferred" yaml:"preferred" json:"preferred"`
}

// Theme is the optional appearance section.
type Theme struct {
	Name     string  `toml:"name" yaml:"name" json:"name"`
	Contrast float32 `toml:"contrast" yaml:"contrast" json:"contrast"`
}

// Default returns a Settings populated with sensible defaults. Used
// when editing starts without an existing settings file. The optional
// sections start absent.
func Default() *Settings {
	s := &Settings{}

	s.General.Volume = 80
	s.General.Fullscreen = false
	s.General.MaxFPS = 60
	s.General.Language = "en"

	s.Audio.MasterDB = -6.0
	s.Audio.Muted = false
	s.Audio.Balance = [2]float32{0.5, 0.5}
	s.Audio.SampleRate = 48000

	s.Network.Host = "localhost"
	s.Network.Port = 8080
	s.Network.TimeoutSecs = 30
	s.Network.Retries = 3

	s.Profiles = []Profile{
		{Name: "default", Rating: 3, Preferred: true},
	}
	s.Tags = []string{"stable"}

	return s
}
