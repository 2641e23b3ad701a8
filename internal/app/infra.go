package app

import (
	"io"

	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/config"
	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/kv"
)

type Infra struct {
	KV kv.Store
}

func setupInfra(cfg config.Config) *Infra {
	return &Infra{
		KV: kv.NewStore(cfg.RedisAddr, cfg.RedisPassword),
	}
}

// close releases the backing store if it holds a connection.
func (i *Infra) close() error {
	if closer, ok := i.KV.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
