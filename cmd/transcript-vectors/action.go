package main

import (
	"github.com/MixinNetwork/transcript-go/vectors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func setVerbosity(ctx *cli.Context) error {
	level, err := logrus.ParseLevel(ctx.GlobalString(VerbosityFlag.Name))
	if err != nil {
		return errors.Wrap(err, "verbosity")
	}
	logrus.SetLevel(level)
	return nil
}

func generateAction(ctx *cli.Context) error {
	out := ctx.String(OutFlag.Name)

	var generated []vectors.Vector
	for _, v := range vectors.Builtin() {
		g, err := vectors.Generate(v)
		if err != nil {
			return err
		}
		generated = append(generated, g)
	}
	if err := vectors.Save(out, generated); err != nil {
		return err
	}

	log.WithField("file", out).WithField("count", len(generated)).Infoln("vectors written")
	return nil
}

func verifyAction(ctx *cli.Context) error {
	in := ctx.String(InFlag.Name)

	loaded, err := vectors.Load(in)
	if err != nil {
		return err
	}
	if len(loaded) == 0 {
		return errors.Errorf("no vectors in %s", in)
	}

	failed := 0
	for _, v := range loaded {
		if err := vectors.Verify(v); err != nil {
			log.WithError(err).WithField("vector", v.Name).Errorln("verification failed")
			failed++
			continue
		}
		log.WithField("vector", v.Name).Infoln("ok")
	}
	if failed > 0 {
		return errors.Errorf("%d of %d vectors failed", failed, len(loaded))
	}
	return nil
}
