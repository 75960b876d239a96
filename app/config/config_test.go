package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Decode()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeoutDuration())
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/tour-insight.db", cfg.Database.DSN)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Minute, cfg.Cache.TTLDuration())
	assert.Equal(t, "123456", cfg.User.DefaultPassword)
}

func TestDecode_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("server.port", "8080")
	viper.Set("database.driver", "postgres")
	viper.Set("database.dsn", "host=localhost user=tour dbname=tour")
	viper.Set("cache.enabled", false)

	cfg, err := Decode()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.False(t, cfg.Cache.Enabled)
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]map[string]any{
		"未知运行模式":   {"server.mode": "prod"},
		"端口非数字":    {"server.port": "http"},
		"未知数据库驱动":  {"database.driver": "oracle"},
		"文件输出缺少路径": {"log.output": "file", "log.file": ""},
		"负数缓存时间":   {"cache.ttl": -1},
		"成本过大":     {"user.password_cost": 40},
		"默认密码过长":   {"user.default_password": strings.Repeat("p", 73)},
	}

	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			for k, v := range values {
				viper.Set(k, v)
			}

			_, err := Decode()
			assert.Error(t, err)
		})
	}
}
