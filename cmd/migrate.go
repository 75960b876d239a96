package cmd

import (
	"context"

	"tour-insight/app/config"
	"tour-insight/app/database"
	"tour-insight/app/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedFile string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "创建或更新数据表，可选导入景点数据",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		log := logger.New(cfg.Log)
		defer log.Close()

		db, err := database.Open(cfg.Database, log)
		if err != nil {
			log.Fatalf("数据库初始化失败: %v", err)
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("数据库迁移失败: %v", err)
		}
		log.Info("数据表迁移完成", zap.String("driver", cfg.Database.Driver))

		if seedFile == "" {
			return
		}
		n, err := database.SeedTours(context.Background(), db, seedFile, log)
		if err != nil {
			log.Fatalf("导入景点数据失败: %v", err)
		}
		log.Info("景点数据导入完成", zap.String("file", seedFile), zap.Int("count", n))
	},
}

func init() {
	migrateCmd.Flags().StringVar(&seedFile, "seed", "", "景点数据 JSON 文件，仅在景点表为空时导入")
	rootCmd.AddCommand(migrateCmd)
}
