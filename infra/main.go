package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/GregMSThompson/bonuses-backend/infra/cloudrun"
	"github.com/GregMSThompson/bonuses-backend/infra/docker"
	"github.com/GregMSThompson/bonuses-backend/infra/firestore"
	"github.com/GregMSThompson/bonuses-backend/infra/provider"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// only the firestore source needs a database in this project
		bonusCfg := config.New(ctx, "bonuses")
		if bonusCfg.Get("source") != "sheets" {
			err = firestore.SetupFirestore(ctx, prov)
			if err != nil {
				return err
			}
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx, prov)
		if err != nil {
			return err
		}

		_, err = cloudrun.SetupCloudRun(ctx, prov, repo)
		if err != nil {
			return err
		}

		return nil
	})
}
