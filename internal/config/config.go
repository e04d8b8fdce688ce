package config

import (
	"flag"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ProjectCfg struct {
	Name string `mapstructure:"name"`
}
type ServerCfg struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}
type RabbitCfg struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
	Queue    string `mapstructure:"queue"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
type LogCfg struct {
	Dir     string `mapstructure:"dir"`
	Level   string `mapstructure:"level"`
	MaxDays int    `mapstructure:"maxDays"`
}
type IDGenCfg struct {
	NodeID int64 `mapstructure:"nodeId"`
}
type NotifyCfg struct {
	TelegramBotToken string `mapstructure:"telegramBotToken"`
	TelegramChatID   string `mapstructure:"telegramChatId"`
}

type Root struct {
	Project  ProjectCfg `mapstructure:"project"`
	Server   ServerCfg  `mapstructure:"server"`
	RabbitMQ RabbitCfg  `mapstructure:"rabbitmq"`
	Redis    RedisCfg   `mapstructure:"redis"`
	Log      LogCfg     `mapstructure:"log"`
	IDGen    IDGenCfg   `mapstructure:"idgen"`
	Notify   NotifyCfg  `mapstructure:"notify"`
}

var C Root

// Init 根据 -env 参数读取 config/config.<env>.yaml
func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	// 敏感配置可放在 .env，例如 ERRCODE_NOTIFY_TELEGRAMBOTTOKEN
	_ = godotenv.Load()

	if err := Load("config/config." + *env + ".yaml"); err != nil {
		log.Fatalf("load config failed: %v", err)
	}
}

// Load 读取指定配置文件到 C
func Load(file string) error {
	v := viper.New()
	v.SetConfigFile(file)
	v.SetEnvPrefix("ERRCODE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv 只覆盖已知 key，敏感项不写进配置文件时需要显式绑定
	_ = v.BindEnv("notify.telegramBotToken")
	_ = v.BindEnv("redis.password")
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	var root Root
	if err := v.Unmarshal(&root); err != nil {
		return err
	}
	applyDefaults(&root)
	C = root
	return nil
}

// sane defaults
func applyDefaults(r *Root) {
	if strings.TrimSpace(r.Project.Name) == "" {
		r.Project.Name = "wxpay-errcode"
	}
	if strings.TrimSpace(r.Server.Port) == "" {
		r.Server.Port = "8080"
	}
	if r.RabbitMQ.Exchange == "" {
		r.RabbitMQ.Exchange = "errcode_events"
	}
	if r.RabbitMQ.Queue == "" {
		r.RabbitMQ.Queue = "errcode_unknown"
	}
	if r.Log.Dir == "" {
		r.Log.Dir = "./logs"
	}
	if r.Log.Level == "" {
		r.Log.Level = "info"
	}
	if r.Log.MaxDays <= 0 {
		r.Log.MaxDays = 7
	}
}
