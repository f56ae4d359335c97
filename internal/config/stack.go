package config

import (
	"path"
	"time"
)

// Default returns the built-in stack: a media-server host with Portainer,
// Watchtower, code-server, Jellyfin, qBittorrent, Sonarr, Radarr, and
// Bazarr on their conventional ports.
func Default() *Config {
	host := Host{
		ConfigRoot:   "/home/docker",
		MediaRoot:    "/home/media",
		DownloadRoot: "/home/downloads",
	}
	tz := "Etc/UTC"

	appDir := func(name string) string { return path.Join(host.ConfigRoot, name) }
	movies := path.Join(host.MediaRoot, "movies")
	tv := path.Join(host.MediaRoot, "tv")

	// PUID/PGID/TZ are the linuxserver.io image conventions.
	lsioEnv := func(extra map[string]string) map[string]string {
		env := map[string]string{
			"PUID": "1000",
			"PGID": "1000",
			"TZ":   tz,
		}
		for k, v := range extra {
			env[k] = v
		}
		return env
	}

	return &Config{
		Version:  "1",
		Timezone: tz,
		Locale:   "en_US.UTF-8",
		Host:     host,
		Docker: Docker{
			DaemonConfigPath: "/etc/docker/daemon.json",
			LogDriver:        "journald",
			InstallURL:       "https://get.docker.com",
			NetworkTimeout:   Duration(15 * time.Minute),
		},
		Containers: []ContainerSpec{
			{
				Name:    "portainer",
				Image:   "portainer/portainer-ce:latest",
				Restart: RestartUnlessStopped,
				Ports:   []string{"9000:9000"},
				Volumes: []string{
					appDir("portainer") + ":/data",
					"/var/run/docker.sock:/var/run/docker.sock",
				},
			},
			{
				Name:    "watchtower",
				Image:   "containrrr/watchtower:latest",
				Restart: RestartAlways,
				Volumes: []string{
					"/var/run/docker.sock:/var/run/docker.sock",
				},
				ExtraArgs: []string{"--cleanup"},
			},
			{
				Name:    "code-server",
				Image:   "lscr.io/linuxserver/code-server:latest",
				Restart: RestartUnlessStopped,
				Ports:   []string{"8443:8443"},
				Volumes: []string{appDir("code-server") + ":/config"},
				Env:     lsioEnv(nil),
			},
			{
				Name:    "jellyfin",
				Image:   "lscr.io/linuxserver/jellyfin:latest",
				Restart: RestartUnlessStopped,
				Ports:   []string{"8096:8096"},
				Volumes: []string{
					appDir("jellyfin") + ":/config",
					tv + ":/data/tvshows",
					movies + ":/data/movies",
				},
				Env: lsioEnv(nil),
			},
			{
				Name:    "qbittorrent",
				Image:   "lscr.io/linuxserver/qbittorrent:latest",
				Restart: RestartUnlessStopped,
				Ports:   []string{"8080:8080", "6881:6881", "6881:6881/udp"},
				Volumes: []string{
					appDir("qbittorrent") + ":/config",
					host.DownloadRoot + ":/downloads",
				},
				Env: lsioEnv(map[string]string{"WEBUI_PORT": "8080"}),
			},
			{
				Name:    "sonarr",
				Image:   "lscr.io/linuxserver/sonarr:latest",
				Restart: RestartUnlessStopped,
				Ports:   []string{"8989:8989"},
				Volumes: []string{
					appDir("sonarr") + ":/config",
					tv + ":/tv",
					host.DownloadRoot + ":/downloads",
				},
				Env: lsioEnv(nil),
			},
			{
				Name:    "radarr",
				Image:   "lscr.io/linuxserver/radarr:latest",
				Restart: RestartUnlessStopped,
				Ports:   []string{"7878:7878"},
				Volumes: []string{
					appDir("radarr") + ":/config",
					movies + ":/movies",
					host.DownloadRoot + ":/downloads",
				},
				Env: lsioEnv(nil),
			},
			{
				Name:    "bazarr",
				Image:   "lscr.io/linuxserver/bazarr:latest",
				Restart: RestartUnlessStopped,
				Ports:   []string{"6767:6767"},
				Volumes: []string{
					appDir("bazarr") + ":/config",
					movies + ":/movies",
					tv + ":/tv",
				},
				Env: lsioEnv(nil),
			},
		},
	}
}
