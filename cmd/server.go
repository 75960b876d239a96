package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tour-insight/app/config"
	"tour-insight/app/database"
	"tour-insight/app/logger"
	"tour-insight/app/server"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "启动服务器",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		// 创建日志器
		log := logger.New(cfg.Log)
		defer log.Close()

		// 日志级别支持热更新，其余配置需要重启
		if viper.ConfigFileUsed() != "" {
			viper.OnConfigChange(func(e fsnotify.Event) {
				level := viper.GetString("log.level")
				log.SetLevel(level)
				log.Info("配置文件已变更", zap.String("file", e.Name), zap.String("log_level", level))
			})
			viper.WatchConfig()
		}

		db, err := database.Open(cfg.Database, log)
		if err != nil {
			log.Fatalf("数据库初始化失败: %v", err)
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("数据库迁移失败: %v", err)
		}

		srv, err := server.New(cfg, log, db)
		if err != nil {
			log.Fatalf("创建服务器失败: %v", err)
		}

		// 在协程中启动服务器
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("启动服务器失败: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("收到关闭信号，正在关闭服务器...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("服务器关闭失败: %v", err)
		}
		log.Info("服务器已退出")
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
