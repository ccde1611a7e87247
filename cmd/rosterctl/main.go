package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"course-roster/config"
	"course-roster/internal/repository"
	"course-roster/internal/service"
	"course-roster/pkg/database"
	applogger "course-roster/pkg/logger"
)

const usage = `用法: rosterctl [-config path] <command> [id]

命令:
  schema             建表（幂等）
  course <id>        课程完整序列化
  course-some <id>   课程精简序列化
  courses            全部课程
  assignment <id>    作业完整序列化
  user <id>          用户完整序列化
  delete-course <id> 删除课程及其全部作业
`

func main() {
	configPath := flag.String("config", "", "配置文件路径（默认查找 ./config/config.yaml）")
	timeout := flag.Duration("timeout", 30*time.Second, "单次命令超时")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if sqlDB, _ := db.DB(); sqlDB != nil {
			sqlDB.Close()
		}
	}()

	// 4. 依赖注入: Repository → Service
	svc := service.NewService(repository.NewRepository(db), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	if cmd == "schema" {
		if err := database.EnsureSchema(db, logger); err != nil {
			logger.Error("建表失败", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, svc, os.Stdout, cmd, args); err != nil {
		logger.Error("命令执行失败", zap.String("command", cmd), zap.Error(err))
		os.Exit(1)
	}
}

var errUsage = errors.New("参数错误")

// run 执行一条查询类命令，结果以缩进 JSON 写入 out
func run(ctx context.Context, svc *service.Service, out io.Writer, cmd string, args []string) error {
	var (
		result interface{}
		err    error
	)

	switch cmd {
	case "courses":
		result, err = svc.Course.List(ctx)
	case "course", "course-some", "assignment", "user", "delete-course":
		id, perr := parseID(args)
		if perr != nil {
			return perr
		}
		switch cmd {
		case "course":
			result, err = svc.Course.GetByID(ctx, id)
		case "course-some":
			result, err = svc.Course.GetSome(ctx, id)
		case "assignment":
			result, err = svc.Assignment.GetByID(ctx, id)
		case "user":
			result, err = svc.User.GetByID(ctx, id)
		case "delete-course":
			err = svc.Course.Delete(ctx, id)
			result = map[string]int64{"deleted": id}
		}
	default:
		return fmt.Errorf("%w: 未知命令 %q", errUsage, cmd)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: 需要且仅需要一个 id", errUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: 无效的 id %q", errUsage, args[0])
	}
	return id, nil
}
