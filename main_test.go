package main_test

import (
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Main", func() {
	var (
		binaryPath string
		cmdArgs    []string
		stdin      string
		session    *gexec.Session
	)

	BeforeEach(func() {
		binaryPath = cliPath
		stdin = ""
		cmdArgs = []string{"version"}
	})

	JustBeforeEach(func() {
		cmd := exec.Command(binaryPath, cmdArgs...)

		if stdin != "" {
			cmd.Stdin = strings.NewReader(stdin)
		}

		var err error
		session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("VersionCommand", func() {
		BeforeEach(func() {
			cmdArgs = []string{"version"}
		})

		It("prints the version", func() {
			Eventually(session.Out).Should(gbytes.Say("pass-meter dev"))
			Eventually(session).Should(gexec.Exit(0))
		})
	})

	Describe("ScoreCommand", func() {
		Context("when given a single password", func() {
			BeforeEach(func() {
				cmdArgs = []string{"score", "--password", "Password1!"}
			})

			It("prints the score, tier, and crack time", func() {
				Eventually(session.Out).Should(gbytes.Say(`Score:\s+102`))
				Eventually(session.Out).Should(gbytes.Say("medium"))
				Eventually(session.Out).Should(gbytes.Say("Crack time:"))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when the password fails the policy", func() {
			var configPath string

			BeforeEach(func() {
				tempDir, err := ioutil.TempDir("", "pass-meter-main")
				Expect(err).NotTo(HaveOccurred())

				configPath = filepath.Join(tempDir, "policy.yml")
				err = ioutil.WriteFile(configPath, []byte("policy:\n  min_length: 64\n"), 0600)
				Expect(err).NotTo(HaveOccurred())

				cmdArgs = []string{"score", "--password", "Password1!", "--config", configPath}
			})

			AfterEach(func() {
				Expect(os.RemoveAll(filepath.Dir(configPath))).To(Succeed())
			})

			It("prints the failures and exits with status 3", func() {
				Eventually(session.Out).Should(gbytes.Say(`\[FAIL\]`))
				Eventually(session.Out).Should(gbytes.Say("Password is too short."))
				Eventually(session).Should(gexec.Exit(3))
			})
		})

		Context("when given content on stdin", func() {
			BeforeEach(func() {
				stdin = "Password1!\naabb\n"
				cmdArgs = []string{"score"}
			})

			It("scores every line and masks the passwords", func() {
				Eventually(session.Out).Should(gbytes.Say(`STDIN:1 P\*+! score=102`))
				Eventually(session.Out).Should(gbytes.Say(`STDIN:2 a\*+b score=10`))
				Eventually(session).Should(gexec.Exit(0))
			})

			Context("with the show-passwords flag", func() {
				BeforeEach(func() {
					cmdArgs = append(cmdArgs, "--show-passwords")
				})

				It("shows the passwords", func() {
					Eventually(session.Out).Should(gbytes.Say(`STDIN:1 Password1! score=102`))
					Eventually(session).Should(gexec.Exit(0))
				})
			})
		})

		Context("when a batch contains policy failures", func() {
			var configPath string

			BeforeEach(func() {
				tempDir, err := ioutil.TempDir("", "pass-meter-main")
				Expect(err).NotTo(HaveOccurred())

				configPath = filepath.Join(tempDir, "policy.yml")
				err = ioutil.WriteFile(configPath, []byte("policy:\n  min_length: 6\n"), 0600)
				Expect(err).NotTo(HaveOccurred())

				stdin = "Password1!\naabb\n"
				cmdArgs = []string{"score", "--config", configPath}
			})

			AfterEach(func() {
				Expect(os.RemoveAll(filepath.Dir(configPath))).To(Succeed())
			})

			It("flags the failing lines and exits with status 3", func() {
				Eventually(session.Out).Should(gbytes.Say(`\[FAIL\] STDIN:2`))
				Eventually(session.Out).Should(gbytes.Say("Password is too short."))
				Eventually(session).Should(gexec.Exit(3))
			})
		})

		Context("when asked to score an archive", func() {
			BeforeEach(func() {
				cmdArgs = []string{"score", "--file", "passwords.zip"}
			})

			It("refuses and exits with an error", func() {
				Eventually(session.Err).Should(gbytes.Say("refusing to score"))
				Eventually(session).Should(gexec.Exit(1))
			})
		})

		Context("when the policy file is invalid", func() {
			var configPath string

			BeforeEach(func() {
				tempDir, err := ioutil.TempDir("", "pass-meter-main")
				Expect(err).NotTo(HaveOccurred())

				configPath = filepath.Join(tempDir, "policy.yml")
				err = ioutil.WriteFile(configPath, []byte("policy:\n  min_length: -1\n"), 0600)
				Expect(err).NotTo(HaveOccurred())

				cmdArgs = []string{"score", "--password", "x", "--config", configPath}
			})

			AfterEach(func() {
				Expect(os.RemoveAll(filepath.Dir(configPath))).To(Succeed())
			})

			It("reports the problem and exits with an error", func() {
				Eventually(session.Err).Should(gbytes.Say("min_length must not be negative"))
				Eventually(session).Should(gexec.Exit(1))
			})
		})
	})

	Describe("CompareCommand", func() {
		Context("when both passwords are given", func() {
			BeforeEach(func() {
				cmdArgs = []string{"compare", "--old", "aabb", "--new", "Password1!"}
			})

			It("prints the movement between the two scores", func() {
				Eventually(session.Out).Should(gbytes.Say(`Old score:\s+10`))
				Eventually(session.Out).Should(gbytes.Say(`New score:\s+102`))
				Eventually(session.Out).Should(gbytes.Say(`\+920\.00%`))
				Eventually(session.Out).Should(gbytes.Say(`Ratio:\s+10\.20`))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when a password is missing", func() {
			BeforeEach(func() {
				cmdArgs = []string{"compare", "--old", "aabb"}
			})

			It("exits with an error", func() {
				Eventually(session.Err).Should(gbytes.Say("both --old and --new must be specified"))
				Eventually(session).Should(gexec.Exit(1))
			})
		})
	})

	Describe("CrackTimeCommand", func() {
		BeforeEach(func() {
			cmdArgs = []string{"crack-time", "--password", "aa", "--rate", "1", "--charset", "10", "--seconds"}
		})

		It("prints the estimate under the custom attack model", func() {
			Eventually(session.Out).Should(gbytes.Say("Crack time: 1 minute, 40 seconds"))
			Eventually(session.Out).Should(gbytes.Say(`Seconds:\s+100`))
			Eventually(session).Should(gexec.Exit(0))
		})
	})

	Describe("when the executable is old", func() {
		BeforeEach(func() {
			binaryPath = oldCliPath
			cmdArgs = []string{"score", "--password", "Password1!"}
		})

		It("suggests an update", func() {
			Eventually(session.Err).Should(gbytes.Say("Executable is old!"))
			Eventually(session).Should(gexec.Exit(0))
		})
	})
})
