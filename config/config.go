// Package config 从 YAML 或 JSONC 文件加载自定义色彩空间。
//
// 文件格式:
//
//	defaults:
//	  colorspace: display-p3
//	  deficiency: deuteranopia
//	colorspaces:
//	  display-p3:
//	    primaries:
//	      - {x: 0.680, y: 0.320, Y: 0.2290}
//	      - {x: 0.265, y: 0.690, Y: 0.6917}
//	      - {x: 0.150, y: 0.060, Y: 0.0793}
//	    whitepoint: D65
//
// whitepoint 可以是内置名称 (D50, D65)，也可以是 {x, y, Y}。
// .json / .jsonc 文件使用相同结构，允许注释和尾随逗号。
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/weaming/colorspace-go/colorspace"
)

// ErrUnsupportedFormat 无法识别的配置文件扩展名
var ErrUnsupportedFormat = errors.New("不支持的配置文件格式")

// Format 配置文件格式
type Format int

const (
	// FormatYAML .yaml / .yml
	FormatYAML Format = iota
	// FormatJSONC .json / .jsonc
	FormatJSONC
)

// Config 配置文件内容
type Config struct {
	Defaults    Defaults                  `yaml:"defaults" json:"defaults"`
	Colorspaces map[string]ColorspaceDef `yaml:"colorspaces" json:"colorspaces"`
}

// Defaults 命令行未指定时使用的默认值
type Defaults struct {
	Colorspace string `yaml:"colorspace" json:"colorspace"`
	Deficiency string `yaml:"deficiency" json:"deficiency"`
}

// ColorspaceDef 单个色彩空间定义
type ColorspaceDef struct {
	Primaries  []Chromaticity `yaml:"primaries" json:"primaries"`
	WhitePoint WhitePoint     `yaml:"whitepoint" json:"whitepoint"`
}

// Chromaticity xyY 坐标
type Chromaticity struct {
	X   float64 `yaml:"x" json:"x"`
	Y   float64 `yaml:"y" json:"y"`
	Lum float64 `yaml:"Y" json:"Y"`
}

// WhitePoint 内置白点名称或显式坐标
type WhitePoint struct {
	Name  string
	Value Chromaticity
}

// UnmarshalYAML 接受标量名称或映射
func (w *WhitePoint) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		w.Name = node.Value
		return nil
	}
	return node.Decode(&w.Value)
}

// UnmarshalJSON 接受字符串名称或对象
func (w *WhitePoint) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &w.Name)
	}
	return json.Unmarshal(data, &w.Value)
}

// Resolve 得到白点的 xyY 值
func (w WhitePoint) Resolve() (colorspace.XyY, error) {
	if w.Name == "" {
		return colorspace.XyY{Cx: w.Value.X, Cy: w.Value.Y, Y: w.Value.Lum}, nil
	}
	wp, ok := colorspace.LookupWhitePoint(w.Name)
	if !ok {
		return colorspace.XyY{}, fmt.Errorf("未知的白点: %s", w.Name)
	}
	return wp, nil
}

// FormatFromPath 根据扩展名判断格式
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSONC, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Parse 解析配置内容并校验每个色彩空间
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("解析 YAML 失败: %w", err)
		}
	case FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return nil, fmt.Errorf("解析 JSONC 失败: %w", err)
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	normalized := make(map[string]ColorspaceDef, len(cfg.Colorspaces))
	for name, def := range cfg.Colorspaces {
		key := strings.ToLower(name)
		if _, dup := normalized[key]; dup {
			return nil, fmt.Errorf("色彩空间重复定义: %s", name)
		}
		normalized[key] = def
	}
	cfg.Colorspaces = normalized

	for _, name := range cfg.Names() {
		if _, err := cfg.Colorspace(name); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Load 读取并解析配置文件
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取 %s 失败: %w", path, err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Names 返回自定义色彩空间名称（已排序）
func (c *Config) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Colorspaces))
	for name := range c.Colorspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colorspace 按名称查找：先查自定义定义，再查内置色彩空间
// nil 配置只查内置色彩空间
func (c *Config) Colorspace(name string) (colorspace.Colorspace, error) {
	if c != nil {
		if def, ok := c.Colorspaces[strings.ToLower(name)]; ok {
			return def.build(name)
		}
	}
	return colorspace.Lookup(name)
}

func (def ColorspaceDef) build(name string) (colorspace.Colorspace, error) {
	if len(def.Primaries) != 3 {
		return colorspace.Colorspace{}, fmt.Errorf("色彩空间 %s: 需要 3 个原色，实际 %d 个", name, len(def.Primaries))
	}

	wp, err := def.WhitePoint.Resolve()
	if err != nil {
		return colorspace.Colorspace{}, fmt.Errorf("色彩空间 %s: %w", name, err)
	}

	cs := colorspace.Colorspace{Name: name, WhitePoint: wp}
	for i, p := range def.Primaries {
		cs.Primaries[i] = colorspace.XyY{Cx: p.X, Cy: p.Y, Y: p.Lum}
	}

	if err := cs.Validate(); err != nil {
		return colorspace.Colorspace{}, fmt.Errorf("色彩空间 %s: %w", name, err)
	}
	return cs, nil
}
