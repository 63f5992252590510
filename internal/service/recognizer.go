package service

import (
	"context"
	"math/rand"
)

// Recognizer 人脸识别能力的抽象
//
// 当前实现是加权抛硬币的占位模拟，不做任何生物特征比对；
// 接入真实识别服务时只需替换此接口的实现，台账逻辑不受影响。
type Recognizer interface {
	// Recognize 判定一帧图像是否命中某个已注册用户
	// 返回 true 仅表示"命中"，具体命中谁由调用方决定
	Recognize(ctx context.Context, faceImage string) (bool, error)
}

// coinFlipRecognizer 固定概率的模拟识别器
type coinFlipRecognizer struct {
	probability float64
}

// NewCoinFlipRecognizer 创建模拟识别器，probability 为判定命中的概率 [0,1]
func NewCoinFlipRecognizer(probability float64) Recognizer {
	return &coinFlipRecognizer{probability: probability}
}

func (r *coinFlipRecognizer) Recognize(_ context.Context, _ string) (bool, error) {
	return rand.Float64() < r.probability, nil
}
