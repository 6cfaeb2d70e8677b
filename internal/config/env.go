package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables recognised by Load.
const (
	EnvLogLevel      = "ATTN_LOG_LEVEL"
	EnvCameraDevice  = "ATTN_CAMERA_DEVICE"
	EnvCameraPreset  = "ATTN_CAMERA_PRESET"
	EnvHeadless      = "ATTN_HEADLESS"
	EnvAlertLog      = "ATTN_ALERT_LOG"
	EnvAlertCooldown = "ATTN_ALERT_COOLDOWN"
	EnvFaceModel     = "ATTN_FACE_MODEL"
	EnvMeshModel     = "ATTN_MESH_MODEL"
)

func applyEnv(cfg *Monitor) error {
	envString(EnvLogLevel, &cfg.LogLevel)
	envString(EnvCameraPreset, &cfg.Camera.Preset)
	envString(EnvAlertLog, &cfg.Alert.LogFile)
	envString(EnvFaceModel, &cfg.Detection.FaceModelPath)
	envString(EnvMeshModel, &cfg.Detection.MeshModelPath)

	if err := envInt(EnvCameraDevice, &cfg.Camera.Device); err != nil {
		return err
	}
	if err := envBool(EnvHeadless, &cfg.Camera.Headless); err != nil {
		return err
	}
	return envDuration(EnvAlertCooldown, &cfg.Alert.Cooldown)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
